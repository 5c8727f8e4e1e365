// Package filestorage keeps employee documents in object storage with a
// database record per file.
package filestorage

import (
	"context"
	"fmt"
	"path"

	"hrms-backend/db"
	filestoragestore "hrms-backend/lib/file-storage/store"
	documentapimodels "hrms-backend/models/api/document"
	dbmodels "hrms-backend/models/db"
	s3client "hrms-backend/s3"

	"github.com/google/uuid"
)

type Provider interface {
	Upload(ctx context.Context, employeeID, uploadedBy, fileName, contentType string, body []byte) (view *documentapimodels.DocumentView, hMsg string, err error)
	Download(ctx context.Context, id string) (rec *dbmodels.EmployeeDocument, body []byte, err error)
	Delete(ctx context.Context, id string) (hMsg string, err error)
	ListByEmployee(employeeID string) (list []documentapimodels.DocumentView, err error)
}

var Instance Provider

func NewHandler(client s3client.Provider) {
	Instance = &handler{
		store:  filestoragestore.NewInstance(db.DB),
		client: client,
	}
}

type handler struct {
	store  filestoragestore.Provider
	client s3client.Provider
}

func (h handler) Upload(ctx context.Context, employeeID, uploadedBy, fileName, contentType string, body []byte) (*documentapimodels.DocumentView, string, error) {
	if len(body) == 0 {
		return nil, "The uploaded file is empty", nil
	}
	// The object key is random so two uploads of the same file never collide.
	objectKey := fmt.Sprintf("documents/%s/%s%s", employeeID, uuid.NewString(), path.Ext(fileName))

	err := h.client.Put(ctx, objectKey, contentType, body)
	if err != nil {
		return nil, "", err
	}

	id, err := h.store.Create(dbmodels.EmployeeDocument{
		EmployeeID:  employeeID,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        int64(len(body)),
		UploadedBy:  uploadedBy,
	})
	if err != nil {
		return nil, "", err
	}
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	view := documentapimodels.DocumentConvert(*rec)
	return &view, "", nil
}

func (h handler) Download(ctx context.Context, id string) (*dbmodels.EmployeeDocument, []byte, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, nil
	}
	body, err := h.client.Get(ctx, rec.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (h handler) Delete(ctx context.Context, id string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Document not found", nil
	}
	err = h.client.Remove(ctx, rec.ObjectKey)
	if err != nil {
		return "", err
	}
	return "", h.store.Delete(id)
}

func (h handler) ListByEmployee(employeeID string) ([]documentapimodels.DocumentView, error) {
	recs, err := h.store.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	list := make([]documentapimodels.DocumentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, documentapimodels.DocumentConvert(rec))
	}
	return list, nil
}
