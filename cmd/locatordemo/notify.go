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

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/locator"
	"dirpx.dev/locator/internal/demo"
)

func newNotifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "notify <recipient> <message>",
		Short: "Send a message through the NotificationService",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ns, err := locator.Resolve[*demo.NotificationService](a.loc, demo.KeyNotification)
			if err != nil {
				return err
			}
			if err := ns.Notify(args[0], args[1]); err != nil {
				return err
			}
			a.log.Info("notification sent", zap.String("recipient", args[0]))
			return nil
		},
	}
}
