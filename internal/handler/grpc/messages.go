package grpc

import "github.com/MKhiriev/dcms-sync/models"

type HealthRequest struct{}

type CollectionRequest struct {
	Collection string `json:"collection"`
}

type CollectionResponse struct {
	Records []models.Record `json:"records"`
}

type ReplaceCollectionRequest struct {
	Collection string          `json:"collection"`
	Records    []models.Record `json:"records"`
}

type RecordsSinceRequest struct {
	Collection string `json:"collection"`
	Since      int64  `json:"since"`
}

type RecordsSinceResponse struct {
	Records []models.VersionedRecord `json:"records"`
}

type UpsertRecordsRequest struct {
	Collection string                `json:"collection"`
	Changes    []models.RecordChange `json:"changes"`
}

type UpsertRecordsResponse struct {
	Results []models.UpsertResult `json:"results"`
}
