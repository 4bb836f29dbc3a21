/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package demo holds the collaborators of the notification example: an email
// sender, a logger and a notification service that depends on both.
package demo

import (
	"fmt"
	"io"

	"dirpx.dev/locator"
)

// Registry keys of the demo services.
const (
	KeyEmail        = "EmailService"
	KeyLogger       = "Logger"
	KeyNotification = "NotificationService"
)

// EmailService "sends" mail by writing it to Out.
type EmailService struct {
	From string
	Out  io.Writer
}

// Send delivers body to recipient.
func (s *EmailService) Send(recipient, body string) error {
	_, err := fmt.Fprintf(s.Out, "email from=%s to=%s: %s\n", s.From, recipient, body)
	return err
}

// Logger prefixes every line it writes.
type Logger struct {
	Prefix string
	Out    io.Writer
}

// Log writes msg.
func (l *Logger) Log(msg string) {
	fmt.Fprintf(l.Out, "%s %s\n", l.Prefix, msg)
}

// NotificationService sends notifications through an EmailService and
// records them with a Logger.
type NotificationService struct {
	email *EmailService
	log   *Logger
}

// NewNotificationService wires the service from its dependencies.
func NewNotificationService(email *EmailService, log *Logger) *NotificationService {
	return &NotificationService{email: email, log: log}
}

// Notify sends message to recipient.
func (n *NotificationService) Notify(recipient, message string) error {
	n.log.Log(fmt.Sprintf("notifying %s", recipient))
	if err := n.email.Send(recipient, message); err != nil {
		return fmt.Errorf("send to %s: %w", recipient, err)
	}
	return nil
}

// Options controls Wire.
type Options struct {
	From   string
	Prefix string
	Out    io.Writer
	// Lazy defers building the NotificationService to its first resolution.
	Lazy bool
}

// Wire registers the email sender and logger, then the notification service
// built from them. Registration order matters for the eager factory.
func Wire(l *locator.Locator, opts Options) error {
	locator.RegisterInstance(l, KeyEmail, &EmailService{From: opts.From, Out: opts.Out})
	locator.RegisterInstance(l, KeyLogger, &Logger{Prefix: opts.Prefix, Out: opts.Out})

	build := func() (*NotificationService, error) {
		email, err := locator.Resolve[*EmailService](l, KeyEmail)
		if err != nil {
			return nil, err
		}
		log, err := locator.Resolve[*Logger](l, KeyLogger)
		if err != nil {
			return nil, err
		}
		return NewNotificationService(email, log), nil
	}
	if opts.Lazy {
		return locator.RegisterLazyFactory(l, KeyNotification, build)
	}
	return locator.RegisterFactory(l, KeyNotification, build)
}
