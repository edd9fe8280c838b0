// Package storetest provides an in-memory Store for handler and guard tests.
package storetest

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store"
)

var _ store.Store = (*Fake)(nil)

// Fake keeps every collection in slices guarded by one mutex. Counter updates
// run under the lock, mirroring Mongo's per-document atomic $inc.
type Fake struct {
	mu sync.Mutex

	Users          []models.User
	PopularClasses []models.PopularClass
	Instructors    []models.Instructor
	Categories     []models.Category
	Reviews        []models.Review
	Offerings      []models.ClassOffering
	Cart           []models.CartSelection
	Enrollments    []models.Enrollment

	// Err, when set, makes every operation fail with it.
	Err error
}

func New() *Fake {
	return &Fake{}
}

func (f *Fake) FindUsers(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.User(nil), f.Users...), nil
}

func (f *Fake) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Users {
		if f.Users[i].Email == email {
			user := f.Users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *Fake) InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.Users = append(f.Users, user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *Fake) SetUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Users {
		if f.Users[i].ID == id {
			f.Users[i].Role = role
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *Fake) ListPopularClasses(ctx context.Context) ([]models.PopularClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	classes := append([]models.PopularClass(nil), f.PopularClasses...)
	sort.SliceStable(classes, func(i, j int) bool { return classes[i].Students > classes[j].Students })
	return classes, nil
}

func (f *Fake) ListInstructors(ctx context.Context) ([]models.Instructor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	instructors := append([]models.Instructor(nil), f.Instructors...)
	sort.SliceStable(instructors, func(i, j int) bool {
		return instructors[i].NumberOfCourses > instructors[j].NumberOfCourses
	})
	return instructors, nil
}

func (f *Fake) ListCategories(ctx context.Context, name string) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if name == "" {
		return append([]models.Category(nil), f.Categories...), nil
	}
	var matched []models.Category
	for _, c := range f.Categories {
		if c.Name == name {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *Fake) ListReviews(ctx context.Context) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.Review(nil), f.Reviews...), nil
}

func (f *Fake) ListOfferings(ctx context.Context) ([]models.ClassOffering, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.ClassOffering(nil), f.Offerings...), nil
}

func (f *Fake) ListApprovedOfferings(ctx context.Context) ([]models.ClassOffering, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var approved []models.ClassOffering
	for _, o := range f.Offerings {
		if o.Status == models.StatusApproved {
			approved = append(approved, o)
		}
	}
	return approved, nil
}

func (f *Fake) ListOfferingsByInstructor(ctx context.Context, email string) ([]models.ClassOffering, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var owned []models.ClassOffering
	for _, o := range f.Offerings {
		if o.InstructorEmail == email {
			owned = append(owned, o)
		}
	}
	return owned, nil
}

func (f *Fake) InsertOffering(ctx context.Context, offering models.ClassOffering) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if offering.ID.IsZero() {
		offering.ID = primitive.NewObjectID()
	}
	f.Offerings = append(f.Offerings, offering)
	return &mongo.InsertOneResult{InsertedID: offering.ID}, nil
}

func (f *Fake) UpdateOfferingDetails(ctx context.Context, id primitive.ObjectID, name string, price float64, availableSet int) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Offerings {
		if f.Offerings[i].ID == id {
			f.Offerings[i].Name = name
			f.Offerings[i].Price = price
			f.Offerings[i].AvailableSet = availableSet
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	// upsert
	f.Offerings = append(f.Offerings, models.ClassOffering{
		ID:           id,
		Name:         name,
		Price:        price,
		AvailableSet: availableSet,
	})
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

func (f *Fake) SetOfferingFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Offerings {
		if f.Offerings[i].ID == id {
			f.Offerings[i].Feedback = feedback
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	f.Offerings = append(f.Offerings, models.ClassOffering{ID: id, Feedback: feedback})
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

func (f *Fake) SetOfferingStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Offerings {
		if f.Offerings[i].ID == id {
			f.Offerings[i].Status = status
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *Fake) DeleteOffering(ctx context.Context, id primitive.ObjectID, instructorEmail string) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Offerings {
		if f.Offerings[i].ID == id && f.Offerings[i].InstructorEmail == instructorEmail {
			f.Offerings = append(f.Offerings[:i], f.Offerings[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *Fake) ListCart(ctx context.Context, email string) ([]models.CartSelection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var owned []models.CartSelection
	for _, c := range f.Cart {
		if c.Email == email {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

func (f *Fake) AddToCart(ctx context.Context, selection models.CartSelection) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if selection.ID.IsZero() {
		selection.ID = primitive.NewObjectID()
	}
	f.Cart = append(f.Cart, selection)
	return &mongo.InsertOneResult{InsertedID: selection.ID}, nil
}

func (f *Fake) RemoveFromCart(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.removeFromCartLocked(id), nil
}

func (f *Fake) removeFromCartLocked(id primitive.ObjectID) *mongo.DeleteResult {
	for i := range f.Cart {
		if f.Cart[i].ID == id {
			f.Cart = append(f.Cart[:i], f.Cart[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}
		}
	}
	return &mongo.DeleteResult{}
}

func (f *Fake) Enroll(ctx context.Context, payment models.Enrollment, cartID primitive.ObjectID) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	f.Enrollments = append(f.Enrollments, payment)

	f.removeFromCartLocked(cartID)
	for i := range f.Offerings {
		if f.Offerings[i].ItemID == payment.ItemID {
			f.Offerings[i].EnrollCount++
			f.Offerings[i].AvailableSet--
		}
	}

	return &mongo.InsertOneResult{InsertedID: payment.ID}, nil
}

func (f *Fake) ListEnrollments(ctx context.Context, email string) ([]models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var owned []models.Enrollment
	for _, e := range f.Enrollments {
		if e.Email == email {
			owned = append(owned, e)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool { return owned[i].Date.After(owned[j].Date) })
	return owned, nil
}
