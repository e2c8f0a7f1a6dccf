package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/tenisx/catalog-api/internal/domain"
	"github.com/tenisx/catalog-api/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
	logger         hclog.Logger
}

func NewProductHandler(ps service.ProductService, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: ps,
		logger:         log,
	}
}

// GetProducts handles GET /products
//
// swagger:route GET /products products listProducts
//
// Returns a list of products.
//
// Responses:
//
//	200: productsResponse
//	500: errorResponse
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetProducts(r.Context())
	if err != nil {
		h.logger.Error("Error getting products", "error", err)
		writeError(w, http.StatusInternalServerError, "Error getting products")
		return
	}

	if products == nil {
		products = domain.Products{}
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProductByID handles GET /products/{id}
//
// swagger:route GET /products/{id} products getProductByID
//
// Returns a product by ID.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := productID(r)

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		if err == domain.ErrProductNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("Error getting product", "error", err)
		writeError(w, http.StatusInternalServerError, "Error getting product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// AddProduct handles POST /products
//
// swagger:route POST /products products addProduct
//
// Adds a new product and returns it with its assigned ID.
//
// Responses:
//
//	201: productResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	// Retrieve the validated product from the context
	product, ok := r.Context().Value(ContextKeyProduct).(*domain.Product)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	// IDs are assigned by the store, never by the caller
	product.ID = 0

	err := h.productService.AddProduct(r.Context(), product)
	if err != nil {
		h.logger.Error("Error adding product", "error", err)
		writeError(w, http.StatusInternalServerError, "Error adding product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/{id}
//
// swagger:route PUT /products/{id} products updateProduct
//
// Replaces every field of an existing product with the supplied values.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := productID(r)

	// Retrieve the validated product from the context
	product, ok := r.Context().Value(ContextKeyProduct).(*domain.Product)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	// the path ID wins over whatever is in the body
	product.ID = id

	err := h.productService.UpdateProduct(r.Context(), product)
	if err != nil {
		if err == domain.ErrProductNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Error updating product", "error", err)
		writeError(w, http.StatusInternalServerError, "Error updating product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{id}
//
// swagger:route DELETE /products/{id} products deleteProduct
//
// Deletes a product.
//
// Responses:
//
//	204: noContentResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := productID(r)

	err := h.productService.DeleteProduct(r.Context(), id)
	if err != nil {
		if err == domain.ErrProductNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Error deleting product", "error", err)
		writeError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// productID extracts the id path variable. The route pattern restricts
// it to digits, so conversion cannot fail for routed requests.
func productID(r *http.Request) int {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["id"])
	return id
}
