package documentapimodels

import (
	dbmodels "hrms-backend/models/db"
	"time"
)

type DocumentView struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func DocumentConvert(rec dbmodels.EmployeeDocument) DocumentView {
	return DocumentView{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		Size:        rec.Size,
		UploadedAt:  rec.CreatedAt,
	}
}
