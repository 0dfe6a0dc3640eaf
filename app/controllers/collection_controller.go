package controllers

import (
	"net/http"

	"shopapi/app/policies"
	"shopapi/app/resources"
	"shopapi/app/services"
	"shopapi/pkg/bind"
	"shopapi/pkg/response"
)

type CollectionController struct {
	service *services.CollectionService
}

func NewCollectionController(service *services.CollectionService) *CollectionController {
	return &CollectionController{service: service}
}

func (c *CollectionController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageLimit(r.URL.Query())
	collections, pagination, err := c.service.List(page, limit)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, resources.NewCollections(collections), pagination)
}

func (c *CollectionController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	collection, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, resources.NewCollection(collection))
}

func (c *CollectionController) Create(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionCreate, policies.ResourceCollection, 0) {
		return
	}

	var in services.CollectionInput
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	collection, errs, err := c.service.Create(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Created(w, resources.NewCollection(collection))
}

func (c *CollectionController) Update(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionUpdate, policies.ResourceCollection, 0) {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	collection, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	in := services.CollectionInput{
		Title:    collection.Title,
		Text:     collection.Text,
		Products: collection.Products,
	}
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	errs, err := c.service.Update(&collection, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Success(w, resources.NewCollection(collection))
}

func (c *CollectionController) Destroy(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionDelete, policies.ResourceCollection, 0) {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		fail(w, r, err)
		return
	}

	response.NoContent(w)
}
