package reports

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	reportMongoRepositoryInstance contracts.ReportRepository
	onceReportMongoRepository     sync.Once
)

type reportMongoRepository struct {
	DB *mongo.Database
}

func NewReportMongoRepository(db *mongo.Database) contracts.ReportRepository {
	onceReportMongoRepository.Do(func() {
		reportMongoRepositoryInstance = &reportMongoRepository{DB: db}
	})
	return reportMongoRepositoryInstance
}

func (r *reportMongoRepository) collection() *mongo.Collection {
	return r.DB.Collection(constvars.MongoCollectionReports)
}

func (r *reportMongoRepository) CreateDetailedReport(ctx context.Context, report *models.DetailedReport) (string, error) {
	report.ID = primitive.NewObjectID().Hex()

	if _, err := r.collection().InsertOne(ctx, report); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return report.ID, nil
}

func (r *reportMongoRepository) FindDetailedReportByPatientID(ctx context.Context, patientID string) (*models.DetailedReport, error) {
	findOptions := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})

	report := new(models.DetailedReport)
	err := r.collection().FindOne(ctx, bson.M{"patient_id": patientID}, findOptions).Decode(report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return report, nil
}

func (r *reportMongoRepository) FindReportSummariesByPatientID(ctx context.Context, patientID string, limit int) ([]models.ReportSummary, error) {
	// Most recent first; _id breaks ties between same-day reports.
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection().Find(ctx, bson.M{"patient_id": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	summaries := make([]models.ReportSummary, 0)
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return summaries, nil
}
