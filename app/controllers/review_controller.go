package controllers

import (
	"net/http"

	"shopapi/app/filters"
	"shopapi/app/policies"
	"shopapi/app/resources"
	"shopapi/app/services"
	"shopapi/pkg/auth"
	"shopapi/pkg/bind"
	"shopapi/pkg/response"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	f, errs := filters.ParseReviewFilter(r.URL.Query())
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	page, limit := pageLimit(r.URL.Query())
	reviews, pagination, err := c.service.List(f, page, limit)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, resources.NewReviews(reviews), pagination)
}

func (c *ReviewController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	review, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, resources.NewReview(review))
}

func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionCreate, policies.ResourceReview, 0) {
		return
	}
	actor := auth.FromCtx(r.Context())

	var in services.ReviewInput
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	review, errs, err := c.service.Create(actor.UserID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Created(w, resources.NewReview(review))
}

func (c *ReviewController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	review, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	// Mutation is reserved for the review's author and staff.
	if !authorize(w, r, policies.ActionUpdate, policies.ResourceReview, review.UserID) {
		return
	}

	in := services.ReviewUpdateInput{Text: review.Text, Rating: review.Rating}
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	errs, err := c.service.Update(&review, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Success(w, resources.NewReview(review))
}

func (c *ReviewController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	review, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	if !authorize(w, r, policies.ActionDelete, policies.ResourceReview, review.UserID) {
		return
	}

	if err := c.service.Delete(review.ID); err != nil {
		fail(w, r, err)
		return
	}

	response.NoContent(w)
}
