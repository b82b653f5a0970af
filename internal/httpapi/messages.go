package httpapi

import (
	"net/http"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"golang.org/x/text/language"
)

const (
	codeUnauthorized   = "unauthorized"
	codeInvalidPayload = "invalid_payload"
	codeRateLimited    = "rate_limited"
)

var supportedLanguages = []language.Tag{language.English, language.French}

var languageMatcher = language.NewMatcher(supportedLanguages)

// localizedMessages is indexed like supportedLanguages.
var localizedMessages = []map[string]string{
	{
		codeUnauthorized:            "Sign in to continue.",
		codeInvalidPayload:          "The request body is not valid.",
		codeRateLimited:             "Too many requests. Slow down and try again.",
		ledger.ErrorCodeInternal:    "Something went wrong. Please try again.",
		"unknown_account":           "No points account exists for this player.",
		"unknown_identity":          "You have not picked a gamertag yet.",
		"unknown_gamertag":          "No player uses that gamertag.",
		"recipient_not_found":       "No player uses that gamertag.",
		"unknown_transaction":       "That transaction does not exist.",
		"unknown_request":           "That request does not exist.",
		"invalid_amount":            "The amount must be a positive whole number of points.",
		"insufficient_balance":      "You do not have enough points.",
		"self_transfer_not_allowed": "You cannot send points to yourself.",
		"duplicate_handle":          "That gamertag is already taken.",
		"identity_exists":           "You already have a gamertag.",
		"not_authorized":            "You are not allowed to do that.",
		"request_not_pending":       "That request has already been handled.",
		"already_reversed":          "That transaction was already reversed.",
		"not_reversible":            "That transaction cannot be reversed.",
		"lock_timeout":              "The ledger is busy. Please retry.",
		"identity_inactive":         "This player is no longer active.",
		"invalid_gamertag":          "Gamertags are 3 to 32 characters: letters, digits and . _ -",
		"invalid_display_name":      "That display name is too long.",
		"invalid_message":           "That message is too long.",
		"invalid_metadata_json":     "Metadata must be a JSON object.",
		"invalid_cursor":            "The page cursor is not valid.",
		"invalid_status":            "Unknown status filter.",
		"invalid_request_id":        "Unknown request id.",
		"invalid_transaction_id":    "Unknown transaction id.",
	},
	{
		codeUnauthorized:            "Connectez-vous pour continuer.",
		codeInvalidPayload:          "Le corps de la requête est invalide.",
		codeRateLimited:             "Trop de requêtes. Réessayez dans un instant.",
		ledger.ErrorCodeInternal:    "Une erreur est survenue. Veuillez réessayer.",
		"unknown_account":           "Aucun compte de points pour ce joueur.",
		"unknown_identity":          "Vous n'avez pas encore choisi de gamertag.",
		"unknown_gamertag":          "Aucun joueur n'utilise ce gamertag.",
		"recipient_not_found":       "Aucun joueur n'utilise ce gamertag.",
		"unknown_transaction":       "Cette transaction n'existe pas.",
		"unknown_request":           "Cette demande n'existe pas.",
		"invalid_amount":            "Le montant doit être un nombre entier positif de points.",
		"insufficient_balance":      "Vous n'avez pas assez de points.",
		"self_transfer_not_allowed": "Vous ne pouvez pas vous envoyer des points.",
		"duplicate_handle":          "Ce gamertag est déjà pris.",
		"identity_exists":           "Vous avez déjà un gamertag.",
		"not_authorized":            "Vous n'êtes pas autorisé à faire cela.",
		"request_not_pending":       "Cette demande a déjà été traitée.",
		"already_reversed":          "Cette transaction a déjà été annulée.",
		"not_reversible":            "Cette transaction ne peut pas être annulée.",
		"lock_timeout":              "Le registre est occupé. Veuillez réessayer.",
		"identity_inactive":         "Ce joueur n'est plus actif.",
		"invalid_gamertag":          "Un gamertag contient 3 à 32 caractères : lettres, chiffres et . _ -",
		"invalid_display_name":      "Ce nom d'affichage est trop long.",
		"invalid_message":           "Ce message est trop long.",
		"invalid_metadata_json":     "Les métadonnées doivent être un objet JSON.",
		"invalid_cursor":            "Le curseur de page est invalide.",
		"invalid_status":            "Filtre de statut inconnu.",
		"invalid_request_id":        "Identifiant de demande inconnu.",
		"invalid_transaction_id":    "Identifiant de transaction inconnu.",
	},
}

var httpStatuses = map[string]int{
	codeUnauthorized:            http.StatusUnauthorized,
	codeInvalidPayload:          http.StatusBadRequest,
	codeRateLimited:             http.StatusTooManyRequests,
	"unknown_account":           http.StatusNotFound,
	"unknown_identity":          http.StatusNotFound,
	"unknown_gamertag":          http.StatusNotFound,
	"recipient_not_found":       http.StatusNotFound,
	"unknown_transaction":       http.StatusNotFound,
	"unknown_request":           http.StatusNotFound,
	"not_authorized":            http.StatusForbidden,
	"identity_inactive":         http.StatusForbidden,
	"duplicate_handle":          http.StatusConflict,
	"identity_exists":           http.StatusConflict,
	"duplicate_id":              http.StatusConflict,
	"request_not_pending":       http.StatusConflict,
	"already_reversed":          http.StatusConflict,
	"not_reversible":            http.StatusConflict,
	"insufficient_balance":      http.StatusUnprocessableEntity,
	"lock_timeout":              http.StatusServiceUnavailable,
	"invalid_amount":            http.StatusBadRequest,
	"self_transfer_not_allowed": http.StatusBadRequest,
	"invalid_gamertag":          http.StatusBadRequest,
	"invalid_display_name":      http.StatusBadRequest,
	"invalid_message":           http.StatusBadRequest,
	"invalid_metadata_json":     http.StatusBadRequest,
	"invalid_cursor":            http.StatusBadRequest,
	"invalid_status":            http.StatusBadRequest,
	"invalid_request_id":        http.StatusBadRequest,
	"invalid_transaction_id":    http.StatusBadRequest,
	"invalid_identity_id":       http.StatusBadRequest,
	"invalid_user_id":           http.StatusBadRequest,
}

// localize returns the message for code in the best language the
// Accept-Language header allows, falling back to English.
func localize(acceptLanguage string, code string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	index := 0
	if err == nil && len(tags) > 0 {
		_, index, _ = languageMatcher.Match(tags...)
	}
	if message, ok := localizedMessages[index][code]; ok {
		return message
	}
	if message, ok := localizedMessages[0][code]; ok {
		return message
	}
	return localizedMessages[index][ledger.ErrorCodeInternal]
}

func httpStatusFor(code string) int {
	if statusCode, ok := httpStatuses[code]; ok {
		return statusCode
	}
	return http.StatusInternalServerError
}
