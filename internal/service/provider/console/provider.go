// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package console

import (
	"context"

	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

var _ provider.MessageSender = (*Sender)(nil)

// Sender writes every message to the log instead of a real transport.
// It never fails and is the default for local runs.
type Sender struct {
	logger *elog.Component
}

func NewSender() *Sender {
	return &Sender{
		logger: elog.DefaultLogger.With(elog.String("sender", "console")),
	}
}

func (s *Sender) Send(_ context.Context, phone, message string) error {
	s.logger.Info("send message",
		elog.String("phone", phone),
		elog.String("message", message))
	return nil
}
