package application_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/projecttype"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/repository/mock"
	"github.com/linskybing/report-hub/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProjectTypeMocks(t *testing.T) (*application.ProjectTypeService,
	*mock.MockProjectTypeRepo,
	*mock.MockReportTemplateRepo,
	*mock.MockProjectRepo,
	*mock.MockAuditRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProjectType := mock.NewMockProjectTypeRepo(ctrl)
	mockTemplate := mock.NewMockReportTemplateRepo(ctrl)
	mockProject := mock.NewMockProjectRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		ProjectType: mockProjectType,
		Template:    mockTemplate,
		Project:     mockProject,
		Audit:       mockAudit,
	}
	return application.NewProjectTypeService(repos), mockProjectType, mockTemplate, mockProject, mockAudit
}

func TestProjectTypeServiceCRUD(t *testing.T) {
	ctx := types.WithCaller(context.Background(), types.Caller{Claims: &types.Claims{UserID: "admin-1", Role: types.RoleAdmin}})

	t.Run("Create success is audited", func(t *testing.T) {
		svc, mockPT, _, _, mockAudit := setupProjectTypeMocks(t)
		mockPT.EXPECT().GetByName(ctx, "Audit").Return(nil, gorm.ErrRecordNotFound)
		mockPT.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		mockAudit.EXPECT().CreateAuditLog(ctx, gomock.Any()).Return(nil).Times(1)

		pt, err := svc.Create(ctx, projecttype.CreateProjectTypeDTO{Name: "Audit"})
		require.NoError(t, err)
		assert.Equal(t, "Audit", pt.Name)
	})

	t.Run("Create duplicate name", func(t *testing.T) {
		svc, mockPT, _, _, _ := setupProjectTypeMocks(t)
		mockPT.EXPECT().GetByName(ctx, "Audit").Return(&projecttype.ProjectType{ID: uuid.New(), Name: "Audit"}, nil)

		_, err := svc.Create(ctx, projecttype.CreateProjectTypeDTO{Name: "Audit"})
		assert.ErrorIs(t, err, application.ErrConflict)
	})

	t.Run("Create blank name", func(t *testing.T) {
		svc, _, _, _, _ := setupProjectTypeMocks(t)
		_, err := svc.Create(ctx, projecttype.CreateProjectTypeDTO{Name: "   "})
		assert.ErrorIs(t, err, application.ErrValidation)
	})

	t.Run("Update keeps own name", func(t *testing.T) {
		svc, mockPT, _, _, mockAudit := setupProjectTypeMocks(t)
		pt := &projecttype.ProjectType{ID: uuid.New(), Name: "Audit"}
		mockPT.EXPECT().GetForUpdate(ctx, pt.ID).Return(pt, nil)
		mockPT.EXPECT().Update(ctx, pt).Return(nil)
		mockAudit.EXPECT().CreateAuditLog(ctx, gomock.Any()).Return(nil)

		updated, err := svc.Update(ctx, pt.ID, projecttype.UpdateProjectTypeDTO{Name: strPtr("Audit"), Description: strPtr("site audits")})
		require.NoError(t, err)
		assert.Equal(t, "site audits", updated.Description)
	})

	t.Run("Update not found", func(t *testing.T) {
		svc, mockPT, _, _, _ := setupProjectTypeMocks(t)
		id := uuid.New()
		mockPT.EXPECT().GetForUpdate(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, id, projecttype.UpdateProjectTypeDTO{Name: strPtr("x")})
		assert.ErrorIs(t, err, application.ErrNotFound)
	})

	t.Run("Delete refused with templates", func(t *testing.T) {
		svc, mockPT, mockTemplate, _, _ := setupProjectTypeMocks(t)
		pt := &projecttype.ProjectType{ID: uuid.New(), Name: "Audit"}
		mockPT.EXPECT().GetForUpdate(ctx, pt.ID).Return(pt, nil)
		mockTemplate.EXPECT().CountByProjectType(ctx, pt.ID).Return(int64(2), nil)

		assert.ErrorIs(t, svc.Delete(ctx, pt.ID), application.ErrConflict)
	})

	t.Run("Delete refused with projects", func(t *testing.T) {
		svc, mockPT, mockTemplate, mockProject, _ := setupProjectTypeMocks(t)
		pt := &projecttype.ProjectType{ID: uuid.New(), Name: "Audit"}
		mockPT.EXPECT().GetForUpdate(ctx, pt.ID).Return(pt, nil)
		mockTemplate.EXPECT().CountByProjectType(ctx, pt.ID).Return(int64(0), nil)
		mockProject.EXPECT().CountByProjectType(ctx, pt.ID).Return(int64(1), nil)

		assert.ErrorIs(t, svc.Delete(ctx, pt.ID), application.ErrConflict)
	})

	t.Run("Delete success", func(t *testing.T) {
		svc, mockPT, mockTemplate, mockProject, mockAudit := setupProjectTypeMocks(t)
		pt := &projecttype.ProjectType{ID: uuid.New(), Name: "Audit"}
		mockPT.EXPECT().GetForUpdate(ctx, pt.ID).Return(pt, nil)
		mockTemplate.EXPECT().CountByProjectType(ctx, pt.ID).Return(int64(0), nil)
		mockProject.EXPECT().CountByProjectType(ctx, pt.ID).Return(int64(0), nil)
		mockPT.EXPECT().Delete(ctx, pt.ID).Return(nil)
		mockAudit.EXPECT().CreateAuditLog(ctx, gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(ctx, pt.ID))
	})

	t.Run("Delete blocked by foreign key", func(t *testing.T) {
		svc, mockPT, mockTemplate, mockProject, _ := setupProjectTypeMocks(t)
		pt := &projecttype.ProjectType{ID: uuid.New(), Name: "Audit"}
		mockPT.EXPECT().GetForUpdate(ctx, pt.ID).Return(pt, nil)
		mockTemplate.EXPECT().CountByProjectType(ctx, pt.ID).Return(int64(0), nil)
		mockProject.EXPECT().CountByProjectType(ctx, pt.ID).Return(int64(0), nil)
		mockPT.EXPECT().Delete(ctx, pt.ID).Return(gorm.ErrForeignKeyViolated)

		assert.ErrorIs(t, svc.Delete(ctx, pt.ID), application.ErrConflict)
	})

	t.Run("List pages with defaults", func(t *testing.T) {
		svc, mockPT, _, _, _ := setupProjectTypeMocks(t)
		mockPT.EXPECT().List(ctx, 1, 10).Return([]projecttype.ProjectType{{Name: "Audit"}}, int64(11), nil)

		page, err := svc.List(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 2, page.TotalPages)
	})
}
