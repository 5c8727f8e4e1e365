package dbmodels

type EmployeeDocument struct {
	BaseModel
	EmployeeID  string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ObjectKey   string `gorm:"type:varchar(255);uniqueIndex"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64
	UploadedBy  string `gorm:"type:varchar(36)"`
}
