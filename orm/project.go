package orm

import (
	"context"
	"errors"

	"portfolio/model"

	"gorm.io/gorm"
)

// ErrProjectNotFound reports a lookup miss, distinct from other store failures.
var ErrProjectNotFound = errors.New("project not found")

// ProjectDB is the gorm-backed project store.
type ProjectDB struct {
	db *gorm.DB
}

func NewProjectDB(db *gorm.DB) *ProjectDB {
	return &ProjectDB{db: db}
}

// ListProjects returns every row. The slice is never nil so an empty store
// still serializes as a JSON array.
func (p *ProjectDB) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	err := p.db.WithContext(ctx).Find(&projects).Error
	return projects, err
}

func (p *ProjectDB) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := p.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *ProjectDB) CreateProject(ctx context.Context, project *model.Project) error {
	return p.db.WithContext(ctx).Create(project).Error
}

func (p *ProjectDB) DeleteProject(ctx context.Context, id uint) error {
	return p.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

// Ping reports whether the underlying connection is alive.
func (p *ProjectDB) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
