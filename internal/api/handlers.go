package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/i18n"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/middleware"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/session"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/upstream"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/validate"
)

const maxUploadMemory = 32 << 20

// Handler contains all portal handlers.
type Handler struct {
	upstream *upstream.Client
	logger   *zap.Logger
}

// NewHandler creates a new portal handler.
func NewHandler(client *upstream.Client, logger *zap.Logger) *Handler {
	return &Handler{upstream: client, logger: logger}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondUpstreamError passes an upstream error through with its status and
// message, falling back to a localized message when the backend sent none.
// Collection snapshots are left to the caller; this only reports.
func (h *Handler) respondUpstreamError(w http.ResponseWriter, lang i18n.Lang, err error, fallbackKey string) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = i18n.T(lang, fallbackKey)
		}
		respondError(w, apiErr.Status, msg)
		return
	}
	h.logger.Warn("upstream call failed", zap.Error(err))
	respondError(w, http.StatusBadGateway, i18n.T(lang, fallbackKey))
}

func langFromRequest(r *http.Request) i18n.Lang {
	if r.URL.Query().Get("lang") == "fr" {
		return i18n.LangFR
	}
	return i18n.LangEN
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Login godoc
// @Summary Authenticate against the upstream API
// @Description Forwards credentials to the upstream login endpoint and returns the issued token and user verbatim.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} map[string]string "Missing credentials"
// @Failure 401 {object} map[string]string "Rejected by upstream"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)

	var creds model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	login, err := h.upstream.Login(r.Context(), creds)
	if err != nil {
		h.respondUpstreamError(w, lang, err, "error.login")
		return
	}
	respondJSON(w, http.StatusOK, login)
}

// Session godoc
// @Summary Current session
// @Description Decodes the bearer token without verification. A missing or malformed token yields a null user, never an error.
// @Tags Session
// @Produce json
// @Success 200 {object} SessionView
// @Security BearerAuth
// @Router /session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := session.FromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		// Malformed token: silently logged out, the client discards it.
		user = nil
	}
	respondJSON(w, http.StatusOK, SessionView{User: user})
}

// Apply godoc
// @Summary Submit an application
// @Description Validates the document set required by the offer's type, then forwards the multipart submission upstream. Candidature offers need the four base documents; every other type needs all ten.
// @Tags Applications
// @Accept mpfd
// @Produce json
// @Param offer_id formData int true "Offer id"
// @Param full_name formData string true "Applicant name"
// @Param email formData string true "Applicant email"
// @Param tel_number formData string true "Phone number"
// @Param applicant_country formData string true "Country"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Missing field or document"
// @Router /apply [post]
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	offerID, err := strconv.Atoi(r.FormValue("offer_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid offer_id")
		return
	}
	in := model.ApplicantInput{
		OfferID:          offerID,
		FullName:         r.FormValue("full_name"),
		Email:            r.FormValue("email"),
		TelNumber:        r.FormValue("tel_number"),
		ApplicantCountry: r.FormValue("applicant_country"),
	}
	if in.FullName == "" || in.Email == "" || in.TelNumber == "" || in.ApplicantCountry == "" {
		respondError(w, http.StatusBadRequest, "all applicant fields are required")
		return
	}

	// The required document set depends on the offer's type, which only the
	// upstream API knows authoritatively.
	offer, err := h.upstream.Offer(r.Context(), offerID)
	if err != nil {
		if upstream.NotFound(err) {
			respondError(w, http.StatusBadRequest, "unknown offer")
			return
		}
		h.respondUpstreamError(w, lang, err, "error.apply")
		return
	}

	hasDocument := func(doc model.DocumentKind) bool {
		return len(r.MultipartForm.File[string(doc)]) > 0
	}
	if err := validate.Application(offer.Type, hasDocument); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	docs, closeDocs, err := collectDocuments(r.MultipartForm)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unreadable document upload")
		return
	}
	defer closeDocs()

	if err := h.upstream.Apply(r.Context(), in, docs); err != nil {
		h.respondUpstreamError(w, lang, err, "error.apply")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// collectDocuments opens every provided document slot as an upstream file
// part. Slots beyond the required set are forwarded when present.
func collectDocuments(form *multipart.Form) ([]upstream.File, func(), error) {
	var files []upstream.File
	var opened []io.Closer
	closeAll := func() {
		for _, c := range opened {
			c.Close()
		}
	}

	for _, kind := range model.AllDocuments() {
		headers := form.File[string(kind)]
		if len(headers) == 0 {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)
		files = append(files, upstream.File{
			Field:    string(kind),
			Filename: headers[0].Filename,
			Content:  f,
		})
	}
	return files, closeAll, nil
}

// CreateOffer godoc
// @Summary Create an offer
// @Tags Offers
// @Accept mpfd
// @Produce json
// @Success 201 {object} model.Offer
// @Failure 400 {object} map[string]string "Missing field"
// @Security BearerAuth
// @Router /offers [post]
func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	h.saveOffer(w, r, 0)
}

// UpdateOffer godoc
// @Summary Update an offer
// @Tags Offers
// @Accept mpfd
// @Produce json
// @Param id path int true "Offer id"
// @Success 201 {object} model.Offer
// @Failure 400 {object} map[string]string "Missing field"
// @Security BearerAuth
// @Router /offers/{id} [put]
func (h *Handler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid offer id")
		return
	}
	h.saveOffer(w, r, id)
}

func (h *Handler) saveOffer(w http.ResponseWriter, r *http.Request, id int) {
	lang := langFromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	in := model.OfferInput{
		Type:        model.OfferType(r.FormValue("type")),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Country:     r.FormValue("country"),
		Projet:      r.FormValue("projet"),
		Department:  r.FormValue("department"),
		Reference:   r.FormValue("reference"),
		Deadline:    r.FormValue("deadline"),
	}
	if in.Type == "" || in.Title == "" || in.Description == "" || in.Country == "" ||
		in.Projet == "" || in.Department == "" || in.Reference == "" || in.Deadline == "" {
		respondError(w, http.StatusBadRequest, "all offer fields are required")
		return
	}

	var tdr *upstream.File
	if headers := r.MultipartForm.File["tdr"]; len(headers) > 0 {
		f, err := headers[0].Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "unreadable tdr upload")
			return
		}
		defer f.Close()
		tdr = &upstream.File{Field: "tdr", Filename: headers[0].Filename, Content: f}
	}

	token := middleware.Token(r)
	var offer *model.Offer
	var err error
	if id == 0 {
		offer, err = h.upstream.CreateOffer(r.Context(), token, in, tdr)
	} else {
		offer, err = h.upstream.UpdateOffer(r.Context(), token, id, in, tdr)
	}
	if err != nil {
		h.respondUpstreamError(w, lang, err, "error.offers")
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	respondJSON(w, status, offer)
}

// DeleteOffer godoc
// @Summary Delete an offer
// @Tags Offers
// @Produce json
// @Param id path int true "Offer id"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /offers/{id} [delete]
func (h *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid offer id")
		return
	}
	if err := h.upstream.DeleteOffer(r.Context(), middleware.Token(r), id); err != nil {
		h.respondUpstreamError(w, langFromRequest(r), err, "error.offers")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ListApplications godoc
// @Summary List applications
// @Tags Applications
// @Produce json
// @Success 200 {array} model.Application
// @Security BearerAuth
// @Router /applications [get]
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.upstream.Applications(r.Context(), middleware.Token(r))
	if err != nil {
		h.respondUpstreamError(w, langFromRequest(r), err, "error.apps")
		return
	}
	respondJSON(w, http.StatusOK, apps)
}

// DeleteApplication godoc
// @Summary Delete an application
// @Tags Applications
// @Produce json
// @Param id path int true "Application id"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /applications/{id} [delete]
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid application id")
		return
	}
	if err := h.upstream.DeleteApplication(r.Context(), middleware.Token(r), id); err != nil {
		h.respondUpstreamError(w, langFromRequest(r), err, "error.apps")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// userFormRequest is the admin user form payload.
type userFormRequest struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Role            model.UserRole `json:"role"`
	Password        string         `json:"password"`
	ConfirmPassword string         `json:"confirmPassword"`
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.upstream.Users(r.Context(), middleware.Token(r))
	if err != nil {
		h.respondUpstreamError(w, langFromRequest(r), err, "error.users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create a user
// @Description Validates the user form (all violations reported at once) before forwarding.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body userFormRequest true "User form"
// @Success 201 {object} model.User
// @Failure 400 {object} map[string]map[string]string "Per-field validation errors"
// @Security BearerAuth
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, 0)
}

// UpdateUser godoc
// @Summary Update a user
// @Description A blank password keeps the current one; the sentinel "unchanged" is forwarded upstream.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body userFormRequest true "User form"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]map[string]string "Per-field validation errors"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	h.saveUser(w, r, id)
}

func (h *Handler) saveUser(w http.ResponseWriter, r *http.Request, id int) {
	lang := langFromRequest(r)
	isEditing := id != 0

	var req userFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := validate.UserForm(validate.UserFormInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}, isEditing)
	if len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]map[string]string{"errors": errs})
		return
	}

	password := req.Password
	if isEditing && password == "" {
		password = model.PasswordUnchanged
	}
	in := model.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: password,
	}

	token := middleware.Token(r)
	var user *model.User
	var err error
	if isEditing {
		user, err = h.upstream.UpdateUser(r.Context(), token, id, in)
	} else {
		user, err = h.upstream.CreateUser(r.Context(), token, in)
	}
	if err != nil {
		h.respondUpstreamError(w, lang, err, "error.users")
		return
	}

	status := http.StatusOK
	if !isEditing {
		status = http.StatusCreated
	}
	respondJSON(w, status, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.upstream.DeleteUser(r.Context(), middleware.Token(r), id); err != nil {
		h.respondUpstreamError(w, langFromRequest(r), err, "error.users")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ListLogs godoc
// @Summary List activity log entries
// @Tags Logs
// @Produce json
// @Success 200 {array} model.LogEntry
// @Security BearerAuth
// @Router /logs [get]
func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.upstream.Logs(r.Context(), middleware.Token(r))
	if err != nil {
		h.respondUpstreamError(w, langFromRequest(r), err, "error.logs")
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// DownloadDocument godoc
// @Summary Stream a stored document
// @Description Proxies a TDR or application document from upstream storage, forwarding the bearer token when one is present. The client saves the stream under the given filename.
// @Tags Documents
// @Produce octet-stream
// @Param path query string true "Upstream document path"
// @Param filename query string false "Download filename"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Missing or invalid path"
// @Router /documents [get]
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" || !strings.HasPrefix(path, "/") || strings.Contains(path, "..") {
		respondError(w, http.StatusBadRequest, "invalid document path")
		return
	}

	body, contentType, err := h.upstream.Download(r.Context(), middleware.Token(r), path)
	if err != nil {
		h.respondUpstreamError(w, lang, err, "error.download")
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	if filename := r.URL.Query().Get("filename"); filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn("document stream interrupted", zap.Error(err))
	}
}
