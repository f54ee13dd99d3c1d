package resumes

import "context"

// Repo defines persistence operations for resume records. Records are
// inserted once and read back; there are no updates or deletes.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	List(ctx context.Context) ([]Resume, error)
}
