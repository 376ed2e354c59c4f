package domain

import "errors"

// Domain errors.
var (
	ErrNotAvailable        = errors.New("données pas encore disponibles")
	ErrEventNotFound       = errors.New("événement non trouvé")
	ErrHostingNotFound     = errors.New("hébergement non trouvé")
	ErrRequestNotFound     = errors.New("demande d'hébergement non trouvée")
	ErrProfileNotFound     = errors.New("profil d'hôte non trouvé")
	ErrInvariantViolation  = errors.New("hébergement hors de l'événement courant")
	ErrInvalidTransition   = errors.New("transition de statut invalide")
	ErrInvalidStatus       = errors.New("statut de demande inconnu")
	ErrOwnHosting          = errors.New("impossible de demander son propre hébergement")
	ErrAcceptedForEvent    = errors.New("demande déjà acceptée pour cet événement")
	ErrActiveRequestExists = errors.New("demande déjà en cours pour cet hébergement")
	ErrNotHost             = errors.New("seul l'hôte peut effectuer cette action")
	ErrNoPlacesAvailable   = errors.New("plus de places disponibles")
	ErrNotRequestable      = errors.New("cet hébergement ne peut pas être demandé")
	ErrInvalidHosting      = errors.New("proposition d'hébergement invalide")
)

var codes = map[error]string{
	ErrNotAvailable:        "not_available",
	ErrEventNotFound:       "event_not_found",
	ErrHostingNotFound:     "hosting_not_found",
	ErrRequestNotFound:     "request_not_found",
	ErrProfileNotFound:     "profile_not_found",
	ErrInvariantViolation:  "invariant_violation",
	ErrInvalidTransition:   "invalid_transition",
	ErrInvalidStatus:       "invalid_status",
	ErrOwnHosting:          "own_hosting",
	ErrAcceptedForEvent:    "accepted_for_event",
	ErrActiveRequestExists: "active_request_exists",
	ErrNotHost:             "not_host",
	ErrNoPlacesAvailable:   "no_places_available",
	ErrNotRequestable:      "not_requestable",
	ErrInvalidHosting:      "invalid_hosting",
}

// Code returns the stable code of the first domain error found in err's
// chain, or "" when err does not wrap a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for target, code := range codes {
		if errors.Is(err, target) {
			return code
		}
	}
	return ""
}
