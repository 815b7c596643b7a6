package convert

//go:generate mockgen -source=converter.go -destination=mock_converter.go -package=convert

import (
	"github.com/sirupsen/logrus"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/convert/downgrade"
	"github.com/translator-tools/reasoner-converter/pkg/convert/upgrade"
	"github.com/translator-tools/reasoner-converter/pkg/log"
)

// Converter translates whole queries and messages in both directions.
type Converter interface {
	UpgradeQuery(query apiv0.Query) (apiv1.Query, error)
	DowngradeQuery(query apiv1.Query) (apiv0.Query, error)
	UpgradeMessage(msg apiv0.Message) (apiv1.Message, error)
	DowngradeMessage(msg apiv1.Message) (apiv0.Message, error)
}

type converter struct {
	log logrus.FieldLogger
}

// NewConverter returns a Converter that logs each conversion at debug level.
// A nil logger discards everything.
func NewConverter(logger logrus.FieldLogger) Converter {
	if logger == nil {
		logger = log.Discard()
	}
	return &converter{log: logger}
}

func (c *converter) UpgradeQuery(query apiv0.Query) (apiv1.Query, error) {
	out, err := upgrade.Query(query)
	c.trace("upgrade", "query", err)
	return out, err
}

func (c *converter) DowngradeQuery(query apiv1.Query) (apiv0.Query, error) {
	out, err := downgrade.Query(query)
	c.trace("downgrade", "query", err)
	return out, err
}

func (c *converter) UpgradeMessage(msg apiv0.Message) (apiv1.Message, error) {
	out, err := upgrade.Message(msg)
	c.trace("upgrade", "message", err)
	return out, err
}

func (c *converter) DowngradeMessage(msg apiv1.Message) (apiv0.Message, error) {
	out, err := downgrade.Message(msg)
	c.trace("downgrade", "message", err)
	return out, err
}

func (c *converter) trace(direction, kind string, err error) {
	entry := c.log.WithFields(logrus.Fields{"direction": direction, "kind": kind})
	if err != nil {
		entry.WithError(err).Debug("conversion failed")
		return
	}
	entry.Debug("converted")
}
