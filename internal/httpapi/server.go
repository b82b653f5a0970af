// Package httpapi serves the session-authenticated Kolofap API used by the UI.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
	"go.uber.org/zap"
)

const (
	outcomeOK = "ok"

	operationTransfer       = "transfer"
	operationRequestCreate  = "request_create"
	operationRequestAccept  = "request_accept"
	operationRequestDecline = "request_decline"
)

// NewRouter wires every route of the API onto a gin engine.
func NewRouter(cfg Config, ledgerService *ledger.Service, validator *sessionvalidator.Validator, metrics *Metrics, logger *zap.Logger) (*gin.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ledgerService == nil || validator == nil {
		return nil, fmt.Errorf("ledger service and session validator are required")
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := &httpHandler{
		ledgerService: ledgerService,
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics,
	}
	if cfg.RateLimitRPS > 0 {
		handler.limiter = newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	return setupRouter(cfg, handler, validator), nil
}

func setupRouter(cfg Config, handler *httpHandler, validator *sessionvalidator.Validator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.metrics.middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept", "Accept-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(handler.metrics.Handler()))

	api := router.Group("/api")
	api.Use(validator.GinMiddleware(claimsContextKey))
	api.Use(handler.rateLimit())

	api.POST("/enroll", handler.handleEnroll)
	api.GET("/me", handler.handleMe)
	api.PATCH("/me/gamertag", handler.handleRename)
	api.GET("/identities/:gamertag", handler.handleResolve)
	api.POST("/transfers", handler.handleTransfer)
	api.GET("/history", handler.handleHistory)
	api.POST("/requests", handler.handleCreateRequest)
	api.GET("/requests", handler.handleListRequests)
	api.POST("/requests/:id/accept", handler.handleAcceptRequest)
	api.POST("/requests/:id/decline", handler.handleDeclineRequest)
	api.GET("/contacts", handler.handleListContacts)
	api.POST("/contacts", handler.handleAddContact)
	api.POST("/contacts/rebuild", handler.handleRebuildContacts)

	return router
}

// NewSessionValidator builds the cookie validator for sessions minted by TAuth.
func NewSessionValidator(cfg Config) (*sessionvalidator.Validator, error) {
	validator, err := sessionvalidator.New(sessionvalidator.Config{
		SigningKey: []byte(cfg.SessionSigningKey),
		Issuer:     cfg.SessionIssuer,
		CookieName: cfg.SessionCookieName,
	})
	if err != nil {
		return nil, fmt.Errorf("session validator: %w", err)
	}
	return validator, nil
}

type httpHandler struct {
	ledgerService *ledger.Service
	cfg           Config
	logger        *zap.Logger
	metrics       *Metrics
	limiter       *rateLimiter
}

func (handler *httpHandler) handleEnroll(ctx *gin.Context) {
	claims := getClaims(ctx)
	if claims == nil {
		handler.abortWithCode(ctx, codeUnauthorized)
		return
	}
	var request enrollRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.abortWithCode(ctx, codeInvalidPayload)
		return
	}
	userID, err := ledger.NewUserID(claims.GetUserID())
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	gamertag, err := ledger.NewGamertag(request.Gamertag)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	displayName := request.DisplayName
	if displayName == "" {
		displayName = claims.GetUserDisplayName()
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()

	identity, err := handler.ledgerService.Enroll(requestCtx, ledger.Registration{
		UserID:      userID,
		Gamertag:    gamertag,
		DisplayName: displayName,
		AvatarURL:   claims.GetUserAvatarURL(),
	})
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"identity": ownIdentityPayload(identity), "balance": 0})
}

func (handler *httpHandler) handleMe(ctx *gin.Context) {
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	balance, err := handler.ledgerService.Balance(requestCtx, identity.ID)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"identity": ownIdentityPayload(identity), "balance": balance.Int64()})
}

func (handler *httpHandler) handleRename(ctx *gin.Context) {
	var request renameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.abortWithCode(ctx, codeInvalidPayload)
		return
	}
	gamertag, err := ledger.NewGamertag(request.Gamertag)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	renamed, err := handler.ledgerService.Rename(requestCtx, identity.ID, gamertag)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"identity": ownIdentityPayload(renamed)})
}

func (handler *httpHandler) handleResolve(ctx *gin.Context) {
	gamertag, err := ledger.NewGamertag(ctx.Param("gamertag"))
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, err := handler.ledgerService.Resolve(requestCtx, gamertag)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"identity": publicIdentityPayload(identity)})
}

// handleTransfer leaves the amount check to the ledger so an unknown
// recipient is reported before an invalid amount.
func (handler *httpHandler) handleTransfer(ctx *gin.Context) {
	var request transferRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.abortWithCode(ctx, codeInvalidPayload)
		return
	}
	recipient, err := ledger.NewGamertag(request.Recipient)
	if err != nil {
		handler.respondError(ctx, operationTransfer, err)
		return
	}
	message, err := ledger.NewMessage(request.Message)
	if err != nil {
		handler.respondError(ctx, operationTransfer, err)
		return
	}
	metadata, err := ledger.NewMetadataJSON(string(request.Metadata))
	if err != nil {
		handler.respondError(ctx, operationTransfer, err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	sender, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	transaction, err := handler.ledgerService.Transfer(requestCtx, ledger.TransferInput{
		SenderID:         sender.ID,
		ReceiverGamertag: recipient,
		Amount:           ledger.Points(request.Amount),
		Message:          message,
		Metadata:         metadata,
	})
	if err != nil {
		handler.respondError(ctx, operationTransfer, err)
		return
	}
	handler.metrics.observeOutcome(operationTransfer, outcomeOK)
	handler.respondTransaction(ctx, requestCtx, http.StatusCreated, sender, transaction)
}

func (handler *httpHandler) handleHistory(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			handler.abortWithCode(ctx, codeInvalidPayload)
			return
		}
		limit = min(parsed, handler.cfg.HistoryPageLimit)
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	page, err := handler.ledgerService.History(requestCtx, identity.ID, ctx.Query("cursor"), limit)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	directory := handler.newCounterpartyDirectory(requestCtx)
	transactions := make([]transactionPayload, 0, len(page.Transactions))
	for _, transaction := range page.Transactions {
		transactions = append(transactions, directory.transaction(identity.ID, transaction))
	}
	ctx.JSON(http.StatusOK, gin.H{"transactions": transactions, "next_cursor": page.NextCursor})
}

func (handler *httpHandler) handleCreateRequest(ctx *gin.Context) {
	var request createRequestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.abortWithCode(ctx, codeInvalidPayload)
		return
	}
	target, err := ledger.NewGamertag(request.Target)
	if err != nil {
		handler.respondError(ctx, operationRequestCreate, err)
		return
	}
	message, err := ledger.NewMessage(request.Message)
	if err != nil {
		handler.respondError(ctx, operationRequestCreate, err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	requester, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	created, err := handler.ledgerService.CreateRequest(requestCtx, ledger.RequestInput{
		RequesterID:    requester.ID,
		TargetGamertag: target,
		Amount:         ledger.Points(request.Amount),
		Message:        message,
	})
	if err != nil {
		handler.respondError(ctx, operationRequestCreate, err)
		return
	}
	handler.metrics.observeOutcome(operationRequestCreate, outcomeOK)
	directory := handler.newCounterpartyDirectory(requestCtx)
	ctx.JSON(http.StatusCreated, gin.H{"request": directory.request(requester.ID, created)})
}

func (handler *httpHandler) handleListRequests(ctx *gin.Context) {
	var filter ledger.RequestFilter
	if raw := ctx.Query("role"); raw != "" {
		role, err := ledger.ParseRequestRole(raw)
		if err != nil {
			handler.respondError(ctx, "", err)
			return
		}
		filter.Role = role
	}
	if raw := ctx.Query("status"); raw != "" {
		status, err := ledger.ParseRequestStatus(raw)
		if err != nil {
			handler.respondError(ctx, "", err)
			return
		}
		filter.Status = status
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	requests, err := handler.ledgerService.ListRequests(requestCtx, identity.ID, filter)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	directory := handler.newCounterpartyDirectory(requestCtx)
	payload := make([]requestPayload, 0, len(requests))
	for _, request := range requests {
		payload = append(payload, directory.request(identity.ID, request))
	}
	ctx.JSON(http.StatusOK, gin.H{"requests": payload})
}

func (handler *httpHandler) handleAcceptRequest(ctx *gin.Context) {
	requestID, err := ledger.NewRequestID(ctx.Param("id"))
	if err != nil {
		handler.respondError(ctx, operationRequestAccept, err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	transaction, err := handler.ledgerService.AcceptRequest(requestCtx, requestID, identity.ID)
	if err != nil {
		handler.respondError(ctx, operationRequestAccept, err)
		return
	}
	handler.metrics.observeOutcome(operationRequestAccept, outcomeOK)
	handler.respondTransaction(ctx, requestCtx, http.StatusOK, identity, transaction)
}

func (handler *httpHandler) handleDeclineRequest(ctx *gin.Context) {
	requestID, err := ledger.NewRequestID(ctx.Param("id"))
	if err != nil {
		handler.respondError(ctx, operationRequestDecline, err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	declined, err := handler.ledgerService.DeclineRequest(requestCtx, requestID, identity.ID)
	if err != nil {
		handler.respondError(ctx, operationRequestDecline, err)
		return
	}
	handler.metrics.observeOutcome(operationRequestDecline, outcomeOK)
	directory := handler.newCounterpartyDirectory(requestCtx)
	ctx.JSON(http.StatusOK, gin.H{"request": directory.request(identity.ID, declined)})
}

func (handler *httpHandler) handleListContacts(ctx *gin.Context) {
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	contacts, err := handler.ledgerService.ListContacts(requestCtx, identity.ID)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"contacts": contactPayloads(contacts)})
}

func (handler *httpHandler) handleAddContact(ctx *gin.Context) {
	var request addContactRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.abortWithCode(ctx, codeInvalidPayload)
		return
	}
	gamertag, err := ledger.NewGamertag(request.Gamertag)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	contact, err := handler.ledgerService.AddContact(requestCtx, identity.ID, gamertag, request.IsFavorite)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"contact": contactPayloadOf(contact)})
}

func (handler *httpHandler) handleRebuildContacts(ctx *gin.Context) {
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	identity, ok := handler.sessionIdentity(ctx, requestCtx)
	if !ok {
		return
	}
	contacts, err := handler.ledgerService.RebuildContacts(requestCtx, identity.ID)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"contacts": contactPayloads(contacts)})
}

func (handler *httpHandler) respondTransaction(ctx *gin.Context, requestCtx context.Context, statusCode int, viewer ledger.Identity, transaction ledger.Transaction) {
	balance, err := handler.ledgerService.Balance(requestCtx, viewer.ID)
	if err != nil {
		handler.respondError(ctx, "", err)
		return
	}
	directory := handler.newCounterpartyDirectory(requestCtx)
	ctx.JSON(statusCode, gin.H{
		"transaction": directory.transaction(viewer.ID, transaction),
		"balance":     balance.Int64(),
	})
}

// sessionIdentity resolves the active identity of the session user. It
// writes the error response itself and reports false when there is none.
func (handler *httpHandler) sessionIdentity(ctx *gin.Context, requestCtx context.Context) (ledger.Identity, bool) {
	claims := getClaims(ctx)
	if claims == nil {
		handler.abortWithCode(ctx, codeUnauthorized)
		return ledger.Identity{}, false
	}
	userID, err := ledger.NewUserID(claims.GetUserID())
	if err != nil {
		handler.abortWithCode(ctx, codeUnauthorized)
		return ledger.Identity{}, false
	}
	identity, err := handler.ledgerService.LookupByUserID(requestCtx, userID)
	if err == nil && !identity.Active {
		err = ledger.ErrUnknownIdentity
	}
	if err != nil {
		handler.respondError(ctx, "", err)
		return ledger.Identity{}, false
	}
	return identity, true
}

func (handler *httpHandler) requestContext(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), handler.cfg.RequestTimeout)
}

// respondError writes the localized error envelope for err. Errors outside
// the ledger taxonomy are logged.
func (handler *httpHandler) respondError(ctx *gin.Context, operation string, err error) {
	code := ledger.ErrorCode(err)
	if code == ledger.ErrorCodeInternal {
		handler.logger.Error("ledger call failed", zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	if operation != "" {
		handler.metrics.observeOutcome(operation, code)
	}
	ctx.AbortWithStatusJSON(httpStatusFor(code), errorResponse(code, localize(ctx.GetHeader("Accept-Language"), code)))
}

func (handler *httpHandler) abortWithCode(ctx *gin.Context, code string) {
	ctx.AbortWithStatusJSON(httpStatusFor(code), errorResponse(code, localize(ctx.GetHeader("Accept-Language"), code)))
}

func getClaims(ctx *gin.Context) *sessionvalidator.Claims {
	claimsValue, ok := ctx.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := claimsValue.(*sessionvalidator.Claims)
	return claims
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

type enrollRequest struct {
	Gamertag    string `json:"gamertag" binding:"required"`
	DisplayName string `json:"display_name"`
}

type renameRequest struct {
	Gamertag string `json:"gamertag" binding:"required"`
}

type transferRequest struct {
	Recipient string          `json:"recipient" binding:"required"`
	Amount    int64           `json:"amount"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata"`
}

type createRequestRequest struct {
	Target  string `json:"target" binding:"required"`
	Amount  int64  `json:"amount"`
	Message string `json:"message"`
}

type addContactRequest struct {
	Gamertag   string `json:"gamertag" binding:"required"`
	IsFavorite bool   `json:"is_favorite"`
}
