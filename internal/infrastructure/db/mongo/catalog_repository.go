package mongo

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

const (
	clinicsCollection    = "tbclinic"
	icd10Collection      = "tbicd10tm"
	screeningsCollection = "screeningrecord"
)

// ClinicRepository reads the clinic reference table.
type ClinicRepository struct {
	coll *mongo.Collection
}

func NewClinicRepository(db *mongo.Database) *ClinicRepository {
	return &ClinicRepository{coll: db.Collection(clinicsCollection)}
}

func (r *ClinicRepository) List(ctx context.Context) ([]domain.Clinic, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "clinicID", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	defer cur.Close(ctx)

	var clinics []domain.Clinic
	if err := cur.All(ctx, &clinics); err != nil {
		return nil, fmt.Errorf("decode clinics: %w", err)
	}
	return clinics, nil
}

// ICD10Repository reads the ICD-10-TM code table.
type ICD10Repository struct {
	coll *mongo.Collection
}

func NewICD10Repository(db *mongo.Database) *ICD10Repository {
	return &ICD10Repository{coll: db.Collection(icd10Collection)}
}

func (r *ICD10Repository) List(ctx context.Context, in ports.ListICD10Input) (*ports.ICD10Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if in.Keyword != "" {
		pattern := primitiveRegex(in.Keyword)
		filter["$or"] = bson.A{
			bson.M{"code": pattern},
			bson.M{"descp": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count icd10: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "Id", Value: 1}}).
		SetSkip(int64((in.Page - 1) * in.Limit)).
		SetLimit(int64(in.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list icd10: %w", err)
	}
	defer cur.Close(ctx)

	var codes []domain.ICD10
	if err := cur.All(ctx, &codes); err != nil {
		return nil, fmt.Errorf("decode icd10: %w", err)
	}

	return &ports.ICD10Page{
		Data:      codes,
		Total:     total,
		PageCount: int(math.Ceil(float64(total) / float64(in.Limit))),
	}, nil
}

// ScreeningRepository persists screening records with sequential ids.
type ScreeningRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewScreeningRepository(db *mongo.Database) *ScreeningRepository {
	return &ScreeningRepository{db: db, coll: db.Collection(screeningsCollection)}
}

func (r *ScreeningRepository) Create(ctx context.Context, s *domain.Screening) (*domain.Screening, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, screeningsCollection)
	if err != nil {
		return nil, err
	}
	s.ScreeningID = id

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("insert screening: %w", err)
	}
	return s, nil
}

func (r *ScreeningRepository) ListByDN(ctx context.Context, dn string) ([]domain.Screening, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"dn": dn},
		options.Find().SetSort(bson.D{{Key: "screeningId", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list screenings: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.Screening
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode screenings: %w", err)
	}
	return records, nil
}
