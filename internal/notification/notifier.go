// Package notification schedules local, fire-and-forget notifications.
package notification

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Notification is shown immediately, there is no trigger delay
type Notification struct {
	Title string
	Body  string
}

// Notifier schedules local notification
type Notifier interface {
	Schedule(context.Context, Notification) error
}

// NotifierFunc adapts function to Notifier
type NotifierFunc func(context.Context, Notification) error

func (f NotifierFunc) Schedule(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

type logNotifier struct {
	log logrus.FieldLogger
}

// NewLogNotifier delivers notifications to log
func NewLogNotifier(log logrus.FieldLogger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Schedule(ctx context.Context, notification Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.log.WithFields(logrus.Fields{
		"title": notification.Title,
		"body":  notification.Body,
	}).Info("local notification")
	return nil
}

type multiNotifier []Notifier

// Multi schedules notification on every notifier and joins their errors
func Multi(notifiers ...Notifier) Notifier {
	return multiNotifier(notifiers)
}

func (m multiNotifier) Schedule(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Schedule(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
