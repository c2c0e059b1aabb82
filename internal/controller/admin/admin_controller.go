package admin

import (
	"io"
	"net/http"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Uploaded bank files are small JSON documents; anything bigger is a mistake.
const maxUploadBytes = 10 << 20

type AdminController struct {
	bankService   service.QuestionBankService
	resultService service.ResultService
	adminService  service.AdminService
}

func NewAdminController(
	bankService service.QuestionBankService,
	resultService service.ResultService,
	adminService service.AdminService,
) *AdminController {
	return &AdminController{
		bankService:   bankService,
		resultService: resultService,
		adminService:  adminService,
	}
}

// UploadQuestions godoc
// @Summary (Admin) Upload a question bank for a test
// @Description Multipart upload of a JSON array of questions. Replaces any previously stored bank for the same test. Mock banks need at least 75 questions.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param test_type path string true "Test type (chapter or mock)"
// @Param test_id path string true "Test ID"
// @Param file formData file true "JSON question bank file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or invalid bank contents"
// @Router /admin/questions/upload/{test_type}/{test_id} [post]
func (c *AdminController) UploadQuestions(ctx *gin.Context) {
	testType := ctx.Param("test_type")
	testID := ctx.Param("test_id")
	if testType != "chapter" && testType != "mock" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Test type must be chapter or mock"})
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No file uploaded"})
		return
	}
	if file.Size > maxUploadBytes {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File too large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read uploaded file", Details: []string{err.Error()}})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read uploaded file", Details: []string{err.Error()}})
		return
	}

	resp, err := c.bankService.UploadBank(testType, testID, data)
	if err != nil {
		log.Warn().Err(err).Str("test_type", testType).Str("test_id", testID).Msg("UploadQuestions: rejected")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to upload questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetUsers godoc
// @Summary (Admin) List all registered users
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("GetUsers: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve users", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetStats godoc
// @Summary (Admin) Platform-wide statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.AdminStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.Stats()
	if err != nil {
		log.Error().Err(err).Msg("GetStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute stats", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetAllResults godoc
// @Summary (Admin) List all results with aggregate stats
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.AdminResultsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results [get]
func (c *AdminController) GetAllResults(ctx *gin.Context) {
	resp, err := c.resultService.GetAllWithStats()
	if err != nil {
		log.Error().Err(err).Msg("GetAllResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteResult godoc
// @Summary (Admin) Delete a result record
// @Tags Admin
// @Produce json
// @Param result_id path string true "Result ID"
// @Success 204 "Result deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/{result_id} [delete]
func (c *AdminController) DeleteResult(ctx *gin.Context) {
	resultID := ctx.Param("result_id")
	if err := c.resultService.Delete(resultID); err != nil {
		log.Error().Err(err).Str("result_id", resultID).Msg("DeleteResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete result", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ExportCSV godoc
// @Summary (Admin) Download all results as CSV
// @Tags Admin
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/export/csv [get]
func (c *AdminController) ExportCSV(ctx *gin.Context) {
	filename, data, err := c.resultService.ExportCSV()
	if err != nil {
		log.Error().Err(err).Msg("ExportCSV: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to export results", Details: []string{err.Error()}})
		return
	}
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "text/csv", data)
}

// ExportCSVToCloud godoc
// @Summary (Admin) Export all results as CSV into the report store
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.ExportResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/export/csv-cloud [get]
func (c *AdminController) ExportCSVToCloud(ctx *gin.Context) {
	resp, err := c.resultService.ExportCSVToCloud()
	if err != nil {
		log.Error().Err(err).Msg("ExportCSVToCloud: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to export results", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListCSVFiles godoc
// @Summary (Admin) List stored CSV exports
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.ExportFileDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/csv-files [get]
func (c *AdminController) ListCSVFiles(ctx *gin.Context) {
	files, err := c.resultService.ListExports()
	if err != nil {
		log.Error().Err(err).Msg("ListCSVFiles: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list exports", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, files)
}

// DeleteCSVFile godoc
// @Summary (Admin) Delete a stored CSV export
// @Tags Admin
// @Produce json
// @Param filename path string true "Export filename"
// @Success 204 "Export deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/csv-files/{filename} [delete]
func (c *AdminController) DeleteCSVFile(ctx *gin.Context) {
	filename := ctx.Param("filename")
	if err := c.resultService.DeleteExport(filename); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("DeleteCSVFile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete export", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}
