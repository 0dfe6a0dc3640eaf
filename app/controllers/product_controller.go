package controllers

import (
	"net/http"

	"shopapi/app/filters"
	"shopapi/app/policies"
	"shopapi/app/resources"
	"shopapi/app/services"
	"shopapi/pkg/bind"
	"shopapi/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	f, errs := filters.ParseProductFilter(r.URL.Query())
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	page, limit := pageLimit(r.URL.Query())
	products, pagination, err := c.service.List(f, page, limit)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, resources.NewProducts(products), pagination)
}

func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, resources.NewProduct(product))
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionCreate, policies.ResourceProduct, 0) {
		return
	}

	var in services.ProductInput
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, errs, err := c.service.Create(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Created(w, resources.NewProduct(product))
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionUpdate, policies.ResourceProduct, 0) {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := c.service.Find(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	// Pre-fill with current values so a partial (PATCH) body only touches
	// the fields it names.
	in := services.ProductInput{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	errs, err := c.service.Update(&product, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Success(w, resources.NewProduct(product))
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, policies.ActionDelete, policies.ResourceProduct, 0) {
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
