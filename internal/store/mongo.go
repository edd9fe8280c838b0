package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sports-academy/backend/internal/models"
)

// MongoStore resolves the eight logical collections of the sports database.
type MongoStore struct {
	classes     *mongo.Collection
	offerings   *mongo.Collection
	cart        *mongo.Collection
	users       *mongo.Collection
	instructors *mongo.Collection
	enrolled    *mongo.Collection
	reviews     *mongo.Collection
	categories  *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		classes:     db.Collection("classes"),
		offerings:   db.Collection("allClasses"),
		cart:        db.Collection("selectedClass"),
		users:       db.Collection("users"),
		instructors: db.Collection("instructor"),
		enrolled:    db.Collection("enrolled"),
		reviews:     db.Collection("reviews"),
		categories:  db.Collection("categories"),
	}
}

func (s *MongoStore) FindUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.users.InsertOne(ctx, user)
}

func (s *MongoStore) SetUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*mongo.UpdateResult, error) {
	return s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
}

func (s *MongoStore) ListPopularClasses(ctx context.Context) ([]models.PopularClass, error) {
	opts := options.Find().SetSort(bson.D{{Key: "students", Value: -1}})
	cursor, err := s.classes.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.PopularClass
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *MongoStore) ListInstructors(ctx context.Context) ([]models.Instructor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "Number_of_Courses", Value: -1}})
	cursor, err := s.instructors.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var instructors []models.Instructor
	if err = cursor.All(ctx, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

func (s *MongoStore) ListCategories(ctx context.Context, name string) ([]models.Category, error) {
	filter := bson.M{}
	if name != "" {
		filter["name"] = name
	}
	cursor, err := s.categories.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *MongoStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *MongoStore) ListOfferings(ctx context.Context) ([]models.ClassOffering, error) {
	return s.findOfferings(ctx, bson.M{})
}

func (s *MongoStore) ListApprovedOfferings(ctx context.Context) ([]models.ClassOffering, error) {
	return s.findOfferings(ctx, bson.M{"status": models.StatusApproved})
}

func (s *MongoStore) ListOfferingsByInstructor(ctx context.Context, email string) ([]models.ClassOffering, error) {
	return s.findOfferings(ctx, bson.M{"instructorEmail": email})
}

func (s *MongoStore) findOfferings(ctx context.Context, filter bson.M) ([]models.ClassOffering, error) {
	cursor, err := s.offerings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offerings []models.ClassOffering
	if err = cursor.All(ctx, &offerings); err != nil {
		return nil, err
	}
	return offerings, nil
}

func (s *MongoStore) InsertOffering(ctx context.Context, offering models.ClassOffering) (*mongo.InsertOneResult, error) {
	return s.offerings.InsertOne(ctx, offering)
}

func (s *MongoStore) UpdateOfferingDetails(ctx context.Context, id primitive.ObjectID, name string, price float64, availableSet int) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"name":          name,
			"price":         price,
			"available_set": availableSet,
		},
	}
	opts := options.Update().SetUpsert(true)
	return s.offerings.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
}

func (s *MongoStore) SetOfferingFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"feedback": feedback}}
	opts := options.Update().SetUpsert(true)
	return s.offerings.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
}

func (s *MongoStore) SetOfferingStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"status": status}}
	return s.offerings.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (s *MongoStore) DeleteOffering(ctx context.Context, id primitive.ObjectID, instructorEmail string) (*mongo.DeleteResult, error) {
	return s.offerings.DeleteOne(ctx, bson.M{"_id": id, "instructorEmail": instructorEmail})
}

func (s *MongoStore) ListCart(ctx context.Context, email string) ([]models.CartSelection, error) {
	cursor, err := s.cart.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var selections []models.CartSelection
	if err = cursor.All(ctx, &selections); err != nil {
		return nil, err
	}
	return selections, nil
}

func (s *MongoStore) AddToCart(ctx context.Context, selection models.CartSelection) (*mongo.InsertOneResult, error) {
	return s.cart.InsertOne(ctx, selection)
}

func (s *MongoStore) RemoveFromCart(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.cart.DeleteOne(ctx, bson.M{"_id": id})
}

// Enroll runs the three-step enrollment sequence. The steps are independent
// driver calls, not a transaction: a failure after the insert leaves an
// enrolled document whose cart row and class counters were never touched.
// The class counters are matched on itemId rather than _id, which is how the
// stored documents have always been keyed for this one update.
func (s *MongoStore) Enroll(ctx context.Context, payment models.Enrollment, cartID primitive.ObjectID) (*mongo.InsertOneResult, error) {
	result, err := s.enrolled.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}

	if result.InsertedID != nil {
		if _, err := s.cart.DeleteOne(ctx, bson.M{"_id": cartID}); err != nil {
			return nil, err
		}

		update := bson.M{"$inc": bson.M{"enroll_count": 1, "available_set": -1}}
		if _, err := s.offerings.UpdateOne(ctx, bson.M{"itemId": payment.ItemID}, update); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *MongoStore) ListEnrollments(ctx context.Context, email string) ([]models.Enrollment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.enrolled.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}
