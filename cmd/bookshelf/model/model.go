package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Book is a single document of the books collection.
type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Author      string             `bson:"author"`
	Description *string            `bson:"description,omitempty"`
}
