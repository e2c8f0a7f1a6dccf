package domain

// Product represents a single catalog item
//
// swagger:model
type Product struct {
	// The ID of the product
	//
	// required: true
	// min: 1
	// example: 1
	ID int `json:"id" gorm:"primaryKey"`

	// The name of the product
	//
	// required: true
	// max length: 200
	// example: Runner X
	Name string `json:"name" gorm:"size:200;not null" validate:"required,max=200"`

	// The brand of the product
	//
	// required: true
	// max length: 100
	// example: Acme
	Brand string `json:"brand" gorm:"size:100;not null" validate:"required,max=100"`

	// The target gender of the product
	//
	// required: false
	// max length: 50
	Gender string `json:"gender" gorm:"size:50" validate:"max=50"`

	// The category of the product
	//
	// required: false
	// max length: 100
	// example: Running
	Category string `json:"category" gorm:"size:100" validate:"max=100"`

	// The price of the product
	//
	// required: true
	// min: 0.01
	// example: 129.90
	Price float64 `json:"price" gorm:"not null" validate:"required,gt=0"`

	// The available sizes as a comma-separated list
	//
	// required: true
	// max length: 200
	// example: 40,41,42
	Sizes string `json:"sizes" gorm:"size:200;not null" validate:"required,max=200"`

	// The status of the product, defaults to "active"
	//
	// required: false
	// max length: 50
	// example: active
	Status string `json:"status" gorm:"size:50;not null;default:active" validate:"max=50"`

	// The public URL of the product image
	//
	// required: false
	// max length: 500
	ImageURL string `json:"image_url" gorm:"size:500" validate:"omitempty,max=500"`

	// The description of the product
	//
	// required: false
	Description string `json:"description" gorm:"type:text"`
}

// StatusActive is the status assigned to newly created products when
// the caller does not supply one.
const StatusActive = "active"

// Products is a collection of Product
type Products []*Product
