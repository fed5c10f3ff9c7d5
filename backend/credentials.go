package backend

import (
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Credentials is the dummy token/url/hub/group/project tuple every fake
// backend carries. It exists only so that harnesses expecting a credentialed
// backend find one; nothing validates or transmits these values.
//
// Values can be overridden through the environment (FAKE_QPU_TOKEN etc.),
// which lets a harness check that its own credential plumbing passes them
// through unchanged.
type Credentials struct {
	Token   string `env:"FAKE_QPU_TOKEN" envDefault:"123456"`
	URL     string `env:"FAKE_QPU_URL" envDefault:"https://"`
	Hub     string `env:"FAKE_QPU_HUB" envDefault:"hub"`
	Group   string `env:"FAKE_QPU_GROUP" envDefault:"group"`
	Project string `env:"FAKE_QPU_PROJECT" envDefault:"project"`
}

func newCredentials() Credentials {
	var c Credentials
	if err := env.Parse(&c); err != nil {
		logrus.Warnf("parsing credential environment: %v, using defaults", err)
		return Credentials{Token: "123456", URL: "https://", Hub: "hub", Group: "group", Project: "project"}
	}
	return c
}
