// Package reasoner adapts reasoner handlers written against one TRAPI release
// so that they can be served to clients speaking the other.
package reasoner

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
	"github.com/translator-tools/reasoner-converter/pkg/log"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
	"github.com/translator-tools/reasoner-converter/pkg/reqid"
)

// V1Handler answers a TRAPI 1.0.0 query.
type V1Handler func(ctx context.Context, query apiv1.Query) (apiv1.Response, error)

// V0Handler answers a TRAPI 0.9.2 query with a message.
type V0Handler func(ctx context.Context, query apiv0.Query) (apiv0.Message, error)

type options struct {
	converter convert.Converter
	log       logrus.FieldLogger
}

type Option func(*options)

// WithConverter replaces the converter used on both sides of the handler.
func WithConverter(c convert.Converter) Option {
	return func(o *options) {
		o.converter = c
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = log.Discard()
	}
	if o.converter == nil {
		o.converter = convert.NewConverter(o.log)
	}
	return o
}

// AsV0 serves a 1.0.0 handler to 0.9.2 clients: the query is upgraded, the
// handler called once, and the message of its response downgraded.
func AsV0(h V1Handler, opts ...Option) V0Handler {
	o := newOptions(opts)
	return func(ctx context.Context, query apiv0.Query) (apiv0.Message, error) {
		ctx, _ = reqid.Ensure(ctx)
		logger := log.WithReqIDFromCtx(ctx, o.log)

		upgraded, err := o.converter.UpgradeQuery(query)
		if err != nil {
			return apiv0.Message{}, fmt.Errorf("upgrading query: %w", err)
		}
		logger.Debug("calling TRAPI 1.0.0 handler")
		response, err := h(ctx, upgraded)
		if err != nil {
			return apiv0.Message{}, fmt.Errorf("TRAPI 1.0.0 handler: %w", err)
		}
		if response.Message == nil {
			return apiv0.Message{}, fmt.Errorf("TRAPI 1.0.0 handler: %w", rcerrors.MissingField("Response", "message"))
		}
		msg, err := o.converter.DowngradeMessage(*response.Message)
		if err != nil {
			return apiv0.Message{}, fmt.Errorf("downgrading response: %w", err)
		}
		return msg, nil
	}
}

// AsV1 serves a 0.9.2 handler to 1.0.0 clients: the query is downgraded, the
// handler called once, and its message upgraded and wrapped in a response.
func AsV1(h V0Handler, opts ...Option) V1Handler {
	o := newOptions(opts)
	return func(ctx context.Context, query apiv1.Query) (apiv1.Response, error) {
		ctx, _ = reqid.Ensure(ctx)
		logger := log.WithReqIDFromCtx(ctx, o.log)

		downgraded, err := o.converter.DowngradeQuery(query)
		if err != nil {
			return apiv1.Response{}, fmt.Errorf("downgrading query: %w", err)
		}
		logger.Debug("calling TRAPI 0.9.2 handler")
		msg, err := h(ctx, downgraded)
		if err != nil {
			return apiv1.Response{}, fmt.Errorf("TRAPI 0.9.2 handler: %w", err)
		}
		upgraded, err := o.converter.UpgradeMessage(msg)
		if err != nil {
			return apiv1.Response{}, fmt.Errorf("upgrading response: %w", err)
		}
		return apiv1.Response{Message: &upgraded}, nil
	}
}
