package controllers

// Created is the standard response for new items
type Created struct {
	ID string `json:"id"`
}

// Accepted is the standard response for submissions entering the review queue
type Accepted struct {
	Status string `json:"status"`
}

// Decided is the standard response for moderation actions
type Decided struct {
	Message string `json:"message"`
}
