package dogs

import (
	"time"

	"github.com/user/dogadopt-go/pagination"
)

// RegisterDogRequest is the payload for listing a dog for adoption.
// @Description Dog registration details
type RegisterDogRequest struct {
	Name        string `json:"name" example:"Buddy"`
	Description string `json:"description" example:"A friendly golden retriever looking for a loving home"`
}

// AdoptDogRequest is the payload for adopting a dog. The thank-you message
// is optional; a blank message is stored as absent.
// @Description Adoption details
type AdoptDogRequest struct {
	ThankYouMessage string `json:"thankYouMessage" example:"Thanks!"`
}

// NewDogView is the dog shape returned right after registration.
type NewDogView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RegisterDogResponse is returned on successful registration.
type RegisterDogResponse struct {
	Message string     `json:"message" example:"Dog registered successfully"`
	Dog     NewDogView `json:"dog"`
}

// AdoptedDogView is the dog shape returned after a successful adoption.
// Owner is the original owner's username.
type AdoptedDogView struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          Status     `json:"status"`
	Owner           string     `json:"owner"`
	AdoptionMessage *string    `json:"adoptionMessage,omitempty"`
	AdoptionDate    *time.Time `json:"adoptionDate"`
}

// AdoptDogResponse is returned on successful adoption.
type AdoptDogResponse struct {
	Message string         `json:"message" example:"Dog adopted successfully"`
	Dog     AdoptedDogView `json:"dog"`
}

// RemoveDogResponse is returned on successful removal.
type RemoveDogResponse struct {
	Message string `json:"message" example:"Dog removed successfully"`
}

// OwnedDogItem is one entry in the owner's registered-dogs listing. Adopter
// is the adopter's username, null while the dog is still available.
type OwnedDogItem struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          Status     `json:"status"`
	Adopter         *string    `json:"adopter"`
	AdoptionMessage *string    `json:"adoptionMessage"`
	AdoptionDate    *time.Time `json:"adoptionDate"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// RegisteredDogsResponse is the paginated registered-dogs listing.
type RegisteredDogsResponse struct {
	Dogs       []OwnedDogItem  `json:"dogs"`
	Pagination pagination.Meta `json:"pagination"`
}

// AdoptedDogItem is one entry in the adopter's listing. OriginalOwner is the
// username of the user who registered the dog.
type AdoptedDogItem struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	OriginalOwner   string     `json:"originalOwner"`
	AdoptionMessage *string    `json:"adoptionMessage"`
	AdoptionDate    *time.Time `json:"adoptionDate"`
}

// AdoptedDogsResponse is the paginated adopted-dogs listing.
type AdoptedDogsResponse struct {
	Dogs       []AdoptedDogItem `json:"dogs"`
	Pagination pagination.Meta  `json:"pagination"`
}
