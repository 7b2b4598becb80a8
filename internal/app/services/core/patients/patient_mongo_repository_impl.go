package patients

import (
	"context"
	"errors"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	patientMongoRepositoryInstance contracts.PatientRepository
	oncePatientMongoRepository     sync.Once
)

type patientMongoRepository struct {
	DB *mongo.Database
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	oncePatientMongoRepository.Do(func() {
		patientMongoRepositoryInstance = &patientMongoRepository{DB: db}
	})
	return patientMongoRepositoryInstance
}

func (r *patientMongoRepository) collection() *mongo.Collection {
	return r.DB.Collection(constvars.MongoCollectionPatients)
}

func (r *patientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	// IDs are assigned here as hex strings so every layer above deals in
	// plain strings instead of driver ObjectIDs.
	patient.ID = primitive.NewObjectID().Hex()

	if _, err := r.collection().InsertOne(ctx, patient); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return patient.ID, nil
}

func (r *patientMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient := new(models.Patient)
	err := r.collection().FindOne(ctx, bson.M{"_id": patientID}).Decode(patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return patient, nil
}
