package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Company           string             `bson:"company,omitempty"`
	Title             string             `bson:"title"`
	Status            string             `bson:"status"`
	Order             int                `bson:"order"`
	JobType           string             `bson:"jobType"`
	Labels            []string           `bson:"labels,omitempty"`
	Priority          string             `bson:"priority"`
	Location          string             `bson:"location,omitempty"`
	Link              string             `bson:"link,omitempty"`
	ExpectedSalary    *float64           `bson:"expectedSalary,omitempty"`
	SalaryCurrency    string             `bson:"salaryCurrency"`
	SalarySource      string             `bson:"salarySource,omitempty"`
	Notes             string             `bson:"notes,omitempty"`
	AppliedDate       *time.Time         `bson:"appliedDate,omitempty"`
	NextInterviewDate *time.Time         `bson:"nextInterviewDate,omitempty"`
	FollowUpDate      *time.Time         `bson:"followUpDate,omitempty"`
	Reminders         []domain.Reminder  `bson:"reminders,omitempty"`
	Owner             primitive.ObjectID `bson:"owner"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

func (mj *mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:                mj.ID.Hex(),
		Company:           mj.Company,
		Title:             mj.Title,
		Status:            mj.Status,
		Order:             mj.Order,
		JobType:           mj.JobType,
		Labels:            mj.Labels,
		Priority:          mj.Priority,
		Location:          mj.Location,
		Link:              mj.Link,
		ExpectedSalary:    mj.ExpectedSalary,
		SalaryCurrency:    mj.SalaryCurrency,
		SalarySource:      mj.SalarySource,
		Notes:             mj.Notes,
		AppliedDate:       mj.AppliedDate,
		NextInterviewDate: mj.NextInterviewDate,
		FollowUpDate:      mj.FollowUpDate,
		Reminders:         mj.Reminders,
		Owner:             mj.Owner.Hex(),
		CreatedAt:         mj.CreatedAt,
		UpdatedAt:         mj.UpdatedAt,
	}
}

func jobOwnerFilter(id, owner string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}
	ownerID, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}
	return bson.M{"_id": oid, "owner": ownerID}, nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ownerID, err := primitive.ObjectIDFromHex(job.Owner)
	if err != nil {
		return nil, fmt.Errorf("%w: bad owner id", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		Company:           job.Company,
		Title:             job.Title,
		Status:            job.Status,
		Order:             job.Order,
		JobType:           job.JobType,
		Labels:            job.Labels,
		Priority:          job.Priority,
		Location:          job.Location,
		Link:              job.Link,
		ExpectedSalary:    job.ExpectedSalary,
		SalaryCurrency:    job.SalaryCurrency,
		SalarySource:      job.SalarySource,
		Notes:             job.Notes,
		AppliedDate:       job.AppliedDate,
		NextInterviewDate: job.NextInterviewDate,
		FollowUpDate:      job.FollowUpDate,
		Reminders:         job.Reminders,
		Owner:             ownerID,
		CreatedAt:         job.CreatedAt,
		UpdatedAt:         job.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *JobRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Job, error) {
	ownerID, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}
	cur, err := r.coll.Find(ctx, bson.M{"owner": ownerID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		out = append(out, mj.toDomain())
	}
	return out, cur.Err()
}

func (r *JobRepository) FindByID(ctx context.Context, id, owner string) (*domain.Job, error) {
	filter, err := jobOwnerFilter(id, owner)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	if err := r.coll.FindOne(ctx, filter).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *JobRepository) Update(ctx context.Context, id, owner string, patch ports.JobPatch) (*domain.Job, error) {
	filter, err := jobOwnerFilter(id, owner)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}
	if patch.JobType != nil {
		set["jobType"] = *patch.JobType
	}
	if patch.Labels != nil {
		set["labels"] = *patch.Labels
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Link != nil {
		set["link"] = *patch.Link
	}
	if patch.ExpectedSalary != nil {
		set["expectedSalary"] = *patch.ExpectedSalary
	}
	if patch.SalaryCurrency != nil {
		set["salaryCurrency"] = *patch.SalaryCurrency
	}
	if patch.SalarySource != nil {
		set["salarySource"] = *patch.SalarySource
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.AppliedDate != nil {
		set["appliedDate"] = *patch.AppliedDate
	}
	if patch.NextInterviewDate != nil {
		set["nextInterviewDate"] = *patch.NextInterviewDate
	}
	if patch.FollowUpDate != nil {
		set["followUpDate"] = *patch.FollowUpDate
	}
	if patch.Reminders != nil {
		set["reminders"] = *patch.Reminders
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	err = r.coll.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mj)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *JobRepository) Delete(ctx context.Context, id, owner string) error {
	filter, err := jobOwnerFilter(id, owner)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every scoped query.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	return err
}
