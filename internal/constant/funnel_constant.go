package constant

const (
	ConversationStatusNew        = "new"
	ConversationStatusCollecting = "collecting"
	ConversationStatusQualified  = "qualified"

	TurnRoleUser  = "user"
	TurnRoleModel = "model"

	// QCM question keys, persisted as-is in qcm_responses
	QcmKeyObjectives = "objectifs"
	QcmKeyWealth     = "patrimoine_financier"
	QcmKeyIncome     = "revenu_annuel"
	QcmKeyPhone      = "telephone"
)

// QCM catalogs are versioned policy data. Changing an option text is a
// breaking change for stored qcm_responses, so append rather than edit.
var (
	QcmObjectivesOptions = []string{
		"préparer ma retraite",
		"réduire mes impôts",
		"investir dans l'immobilier",
		"transmettre mon patrimoine",
		"faire fructifier mon épargne",
	}

	QcmWealthOptions = []string{
		"moins de 100 000 euros",
		"entre 100 000 et 300 000 euros",
		"entre 300 000 et 1 million d'euros",
		"plus de 1 million d'euros",
	}

	QcmIncomeOptions = []string{
		"moins de 50 000 euros",
		"entre 50 000 et 100 000 euros",
		"entre 100 000 et 200 000 euros",
		"plus de 200 000 euros",
	}
)

const (
	// ErrMissingQuestion is the wire-level message for an empty question.
	ErrMissingQuestion = "Question manquante"

	// ErrInternal is the opaque 500 body; internal details stay in the logs.
	ErrInternal = "Erreur interne du serveur"

	// FallbackReply is returned whenever the turn pipeline fails in a way
	// the user cannot act on. It must never leak internal error details.
	FallbackReply = "Je suis désolé, je n'ai pas pu traiter votre demande. Pourriez-vous reformuler votre question ?"
)
