package service

import (
	"context"
	"errors"
	"io"
	"strconv"

	"portfolio/logutils"
	"portfolio/media"
	"portfolio/model"
	"portfolio/orm"
	"portfolio/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

const (
	msgFetchFailed  = "An error occurred while fetching projects"
	msgCreateFailed = "An error occurred while creating the project"
	msgDeleteFailed = "An error occurred while deleting the project"
	msgNotFound     = "Project not found"
	msgDeleted      = "Project deleted successfully"
)

// ProjectStore is the persistence surface the handlers need.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id uint) (*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) error
	DeleteProject(ctx context.Context, id uint) error
}

// MediaStore is the remote image host surface the handlers need.
type MediaStore interface {
	UploadImage(ctx context.Context, filename string, r io.Reader) (*media.Upload, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type ProjectService struct {
	store ProjectStore
	media MediaStore
}

func NewProjectService(store ProjectStore, mediaStore MediaStore) *ProjectService {
	return &ProjectService{store: store, media: mediaStore}
}

// RegisterProject mounts the project routes.
func RegisterProject(r gin.IRouter, s *ProjectService) {
	r.GET("/projects", s.ListProjects)
	r.POST("/project", s.CreateProject)
	r.DELETE("/project/:id", s.DeleteProject)
}

func (s *ProjectService) ListProjects(c *gin.Context) {
	projects, err := s.store.ListProjects(c.Request.Context())
	if err != nil {
		logutils.Log.Error("list projects: ", err)
		response.Error(c, response.Upstream, msgFetchFailed)
		return
	}
	response.OK(c, projects)
}

// CreateProject uploads the image first and inserts the row second; a row is
// never created without a prior successful upload.
func (s *ProjectService) CreateProject(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		logutils.Log.Error("create project: read image field: ", err)
		response.Error(c, response.Upstream, msgCreateFailed)
		return
	}
	src, err := file.Open()
	if err != nil {
		logutils.Log.Error("create project: open image: ", err)
		response.Error(c, response.Upstream, msgCreateFailed)
		return
	}
	defer src.Close()

	upload, err := s.media.UploadImage(c.Request.Context(), file.Filename, src)
	if err != nil {
		logutils.Log.Error("create project: upload image: ", err)
		response.Error(c, response.Upstream, msgCreateFailed)
		return
	}

	project := model.Project{
		Image:        upload.URL,
		CloudinaryID: upload.PublicID,
		Media: datatypes.NewJSONType(model.MediaAttributes{
			Width:  upload.Width,
			Height: upload.Height,
			Format: upload.Format,
			Bytes:  upload.Bytes,
		}),
	}
	// No pre-validation: a missing description reaches the store as NULL
	// and fails against the NOT NULL column.
	if desc, ok := c.GetPostForm("description"); ok {
		project.Description = &desc
	}
	if err := s.store.CreateProject(c.Request.Context(), &project); err != nil {
		logutils.Log.Error("create project: insert row: ", err)
		response.Error(c, response.Upstream, msgCreateFailed)
		return
	}
	response.Created(c, project)
}

// DeleteProject deletes the remote image first; once the lookup succeeded the
// row delete proceeds whether or not the remote delete worked.
func (s *ProjectService) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logutils.Log.Error("delete project: bad id ", c.Param("id"), ": ", err)
		response.Error(c, response.Upstream, msgDeleteFailed)
		return
	}

	project, err := s.store.GetProject(c.Request.Context(), uint(id))
	if errors.Is(err, orm.ErrProjectNotFound) {
		response.Error(c, response.NotFound, msgNotFound)
		return
	}
	if err != nil {
		logutils.Log.Error("delete project ", id, ": lookup: ", err)
		response.Error(c, response.Upstream, msgDeleteFailed)
		return
	}

	if project.CloudinaryID != "" {
		if err := s.media.DeleteImage(c.Request.Context(), project.CloudinaryID); err != nil {
			logutils.Log.Error("delete project ", id, ": remote image ", project.CloudinaryID, ": ", err)
		}
	}

	if err := s.store.DeleteProject(c.Request.Context(), uint(id)); err != nil {
		logutils.Log.Error("delete project ", id, ": delete row: ", err)
		response.Error(c, response.Upstream, msgDeleteFailed)
		return
	}
	response.Message(c, msgDeleted)
}
