package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MostafaKhidr/QCHAT/catalog"
	"github.com/MostafaKhidr/QCHAT/models"
	"github.com/MostafaKhidr/QCHAT/services"
	"github.com/MostafaKhidr/QCHAT/utils"
)

// APIHandler holds all dependencies for API handlers.
type APIHandler struct {
	catalog        *catalog.Catalog
	sessionService services.SessionService
	reportService  services.ReportService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	cat *catalog.Catalog,
	sessionService services.SessionService,
	reportService services.ReportService,
) *APIHandler {
	return &APIHandler{
		catalog:        cat,
		sessionService: sessionService,
		reportService:  reportService,
	}
}

// RootHandler returns basic service information.
func (h *APIHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Q-CHAT-10 API",
		"version": "1.0.0",
	})
}

// HealthHandler is the liveness probe.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// CreateSessionHandler starts a new screening session.
func (h *APIHandler) CreateSessionHandler(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	session, err := h.sessionService.CreateSession(models.ChildProfile{
		ChildName:      req.ChildName,
		ChildAgeMonths: req.ChildAgeMonths,
		ParentName:     req.ParentName,
		Language:       models.Language(req.Language),
	})
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateSessionResponse{
		SessionToken:   session.Token,
		ChildName:      session.ChildName,
		ChildAgeMonths: session.ChildAgeMonths,
		CreatedAt:      session.CreatedAt,
	})
}

// GetSessionHandler returns the stored state of a session.
func (h *APIHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.sessionService.GetSession(c.Param("token"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(session, h.catalog.Size()))
}

// GetQuestionHandler returns the language-filtered view of one question
// for the session's selected language.
func (h *APIHandler) GetQuestionHandler(c *gin.Context) {
	session, err := h.sessionService.GetSession(c.Param("token"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	number, err := parseQuestionNumber(c.Param("number"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	question, err := h.catalog.Get(number)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, newQuestionView(question, session.Language))
}

// ListQuestionsHandler returns the full bilingual catalog.
func (h *APIHandler) ListQuestionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}

// SubmitAnswerHandler records one answer for a session.
func (h *APIHandler) SubmitAnswerHandler(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	result, err := h.sessionService.SubmitAnswer(
		c.Param("token"),
		req.QuestionNumber,
		models.AnswerOption(req.SelectedOption),
	)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReportHandler returns the final screening report of a completed
// session.
func (h *APIHandler) GetReportHandler(c *gin.Context) {
	report, err := h.reportService.Assemble(c.Param("token"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetDraftReportHandler returns a best-effort preview report for a
// session in any state.
func (h *APIHandler) GetDraftReportHandler(c *gin.Context) {
	report, err := h.reportService.AssembleDraft(c.Param("token"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
