package controllers

import (
	"net/http"

	"shopapi/app/filters"
	"shopapi/app/policies"
	"shopapi/app/resources"
	"shopapi/app/services"
	"shopapi/pkg/auth"
	"shopapi/pkg/bind"
	"shopapi/pkg/logger"
	"shopapi/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionList, policies.ResourceOrder, 0) {
		return
	}
	actor := auth.FromCtx(r.Context())

	f, errs := filters.ParseOrderFilter(r.URL.Query())
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	// Non-staff callers only ever see their own orders.
	ownerID := actor.UserID
	if actor.IsStaff {
		ownerID = 0
	}

	page, limit := pageLimit(r.URL.Query())
	orders, pagination, err := c.service.List(f, ownerID, page, limit)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, resources.NewOrders(orders), pagination)
}

func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	if !authorize(w, r, policies.ActionRetrieve, policies.ResourceOrder, order.UserID) {
		return
	}

	response.Success(w, resources.NewOrder(order))
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionCreate, policies.ResourceOrder, 0) {
		return
	}
	actor := auth.FromCtx(r.Context())

	var in services.OrderInput
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, errs, err := c.service.Place(actor.UserID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	logger.WithCtx(r.Context()).Info("order placed",
		"order_id", order.ID,
		"user_id", order.UserID,
		"total_price", order.TotalPrice,
		"items", len(order.Items),
	)
	response.Created(w, resources.NewOrder(order))
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionUpdate, policies.ResourceOrder, 0) {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	var in services.OrderStatusInput
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	errs, err := c.service.UpdateStatus(&order, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Success(w, resources.NewOrder(order))
}

func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionDelete, policies.ResourceOrder, 0) {
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
