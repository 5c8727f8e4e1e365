// Package notify delivers workflow events to users over email. Recipients
// are resolved lazily so a missing mailbox never breaks the approval flow.
package notify

import (
	"fmt"
	"strings"

	"hrms-backend/config"
	"hrms-backend/db"
	"hrms-backend/lib/smtp"
	usersstore "hrms-backend/lib/users/store"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	ApprovalAssigned(userID, objectTitle, levelName string)
	ApprovalOutcome(userID, objectTitle string, approved bool)
	// EscalateToAdmins mails the configured administrator addresses.
	EscalateToAdmins(subject, message string)
}

var Instance Provider

func NewHandler() {
	Instance = &handler{
		users: usersstore.NewInstance(db.DB),
	}
}

type handler struct {
	users usersstore.Provider
}

func (h handler) ApprovalAssigned(userID, objectTitle, levelName string) {
	h.sendToUser(userID, "Approval required",
		fmt.Sprintf("%q is awaiting your decision at the %s level.", objectTitle, levelName))
}

func (h handler) ApprovalOutcome(userID, objectTitle string, approved bool) {
	outcome := "approved"
	if !approved {
		outcome = "rejected"
	}
	h.sendToUser(userID, "Approval "+outcome,
		fmt.Sprintf("%q has been %s.", objectTitle, outcome))
}

func (h handler) EscalateToAdmins(subject, message string) {
	for _, address := range strings.Split(config.Conf.Workflow.AdminEmails, ",") {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}
		if err := smtp.Instance.SendEMail(address, subject, message); err != nil {
			log.WithField("recipient", address).
				WithError(err).
				Error("can not send escalation email")
		}
	}
}

func (h handler) sendToUser(userID, subject, message string) {
	logger := log.WithField("userId", userID)
	user, err := h.users.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("can not load notification recipient")
		return
	}
	if user == nil || user.Email == "" {
		logger.Warn("notification recipient has no email")
		return
	}
	if err := smtp.Instance.SendEMail(user.Email, subject, message); err != nil {
		logger.WithError(err).Error("can not send notification email")
	}
}
