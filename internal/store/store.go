package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sports-academy/backend/internal/models"
)

// Store is the injected data-access dependency handlers are built on. Write
// operations surface the raw driver result structs because the HTTP responses
// mirror them verbatim.
type Store interface {
	// users
	FindUsers(ctx context.Context) ([]models.User, error)
	// FindUserByEmail returns (nil, nil) when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	SetUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*mongo.UpdateResult, error)

	// reference collections
	ListPopularClasses(ctx context.Context) ([]models.PopularClass, error)
	ListInstructors(ctx context.Context) ([]models.Instructor, error)
	ListCategories(ctx context.Context, name string) ([]models.Category, error)
	ListReviews(ctx context.Context) ([]models.Review, error)

	// class offerings
	ListOfferings(ctx context.Context) ([]models.ClassOffering, error)
	ListApprovedOfferings(ctx context.Context) ([]models.ClassOffering, error)
	ListOfferingsByInstructor(ctx context.Context, email string) ([]models.ClassOffering, error)
	InsertOffering(ctx context.Context, offering models.ClassOffering) (*mongo.InsertOneResult, error)
	UpdateOfferingDetails(ctx context.Context, id primitive.ObjectID, name string, price float64, availableSet int) (*mongo.UpdateResult, error)
	SetOfferingFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error)
	SetOfferingStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (*mongo.UpdateResult, error)
	DeleteOffering(ctx context.Context, id primitive.ObjectID, instructorEmail string) (*mongo.DeleteResult, error)

	// cart
	ListCart(ctx context.Context, email string) ([]models.CartSelection, error)
	AddToCart(ctx context.Context, selection models.CartSelection) (*mongo.InsertOneResult, error)
	RemoveFromCart(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)

	// enrollment
	Enroll(ctx context.Context, payment models.Enrollment, cartID primitive.ObjectID) (*mongo.InsertOneResult, error)
	ListEnrollments(ctx context.Context, email string) ([]models.Enrollment, error)
}
