package stage

import (
	"wealth-advisor-be/internal/constant"
	"wealth-advisor-be/pkg/funnel/lead"
	"wealth-advisor-be/pkg/funnel/qcm"
)

// Stage is the next unmet qualification requirement.
type Stage string

const (
	NeedName       Stage = "NEED_NAME"
	NeedContact    Stage = "NEED_CONTACT"
	NeedObjectives Stage = "NEED_OBJECTIVES"
	NeedWealth     Stage = "NEED_WEALTH"
	NeedIncome     Stage = "NEED_INCOME"
	NeedPhone      Stage = "NEED_PHONE"
	Complete       Stage = "COMPLETE"
)

// Resolve walks the funnel in its fixed order and returns the first stage
// whose data is still missing. Re-evaluating from the top each turn is what
// lets stages filled out of order (multi-fact messages) be skipped without
// the resolver tracking any history. Phone is optional: recording any answer
// under the telephone key, including a refusal, moves past it.
func Resolve(record lead.Record, progress qcm.Progress) Stage {
	if record.Name == nil {
		return NeedName
	}
	if record.Contact == nil {
		return NeedContact
	}
	if len(record.Objectives) == 0 && !progress.Answered(constant.QcmKeyObjectives) {
		return NeedObjectives
	}
	if record.WealthBracket == nil && !progress.Answered(constant.QcmKeyWealth) {
		return NeedWealth
	}
	if record.IncomeBracket == nil && !progress.Answered(constant.QcmKeyIncome) {
		return NeedIncome
	}
	if record.Phone == nil && !progress.Answered(constant.QcmKeyPhone) {
		return NeedPhone
	}
	return Complete
}

// QcmKey maps a stage to the QCM question it asks, empty for free-text stages.
func QcmKey(s Stage) string {
	switch s {
	case NeedObjectives:
		return constant.QcmKeyObjectives
	case NeedWealth:
		return constant.QcmKeyWealth
	case NeedIncome:
		return constant.QcmKeyIncome
	case NeedPhone:
		return constant.QcmKeyPhone
	}
	return ""
}

// Options returns the closed catalog for a QCM stage, nil for free-text ones.
func Options(s Stage) []string {
	switch s {
	case NeedObjectives:
		return constant.QcmObjectivesOptions
	case NeedWealth:
		return constant.QcmWealthOptions
	case NeedIncome:
		return constant.QcmIncomeOptions
	}
	return nil
}

// Directive is the "next question to ask" instruction injected in the prompt.
func Directive(s Stage) string {
	switch s {
	case NeedName:
		return "Demande au visiteur comment il s'appelle."
	case NeedContact:
		return "Demande au visiteur un email ou un numéro pour le recontacter."
	case NeedObjectives:
		return "Demande ses objectifs patrimoniaux en proposant : " + joinOptions(constant.QcmObjectivesOptions)
	case NeedWealth:
		return "Demande sa tranche de patrimoine financier en proposant : " + joinOptions(constant.QcmWealthOptions)
	case NeedIncome:
		return "Demande sa tranche de revenu annuel en proposant : " + joinOptions(constant.QcmIncomeOptions)
	case NeedPhone:
		return "Propose (sans insister, c'est optionnel) de laisser un numéro de téléphone pour être rappelé."
	}
	return "Le profil est complet : ne pose plus de question de qualification, réponds simplement."
}

func joinOptions(options []string) string {
	out := ""
	for i, o := range options {
		if i > 0 {
			out += " / "
		}
		out += o
	}
	return out
}
