// Package remote lets an MQTT clicker drive the presentation.
package remote

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/revealer/internal/config"
	"github.com/ivlev/revealer/internal/controller"
)

// Navigator is the part of the controller the clicker drives.
type Navigator interface {
	Forward() (controller.Outcome, error)
	Backward() (controller.Outcome, error)
	JumpTo(index int) (controller.Outcome, error)
	Reset() error
	Position() controller.Position
}

// Status is the document published after every move.
type Status struct {
	Slide   int    `yaml:"slide"` // 1-based
	Slides  int    `yaml:"slides"`
	Step    int    `yaml:"step"`
	Steps   int    `yaml:"steps"`
	Repeat  int    `yaml:"repeat"`
	Repeats int    `yaml:"repeats"`
	State   string `yaml:"state"`
	Outcome string `yaml:"outcome"`
	Error   string `yaml:"error,omitempty"`
}

// NewStatus describes pos after a move that ended with outcome and err.
func NewStatus(pos controller.Position, outcome string, err error) Status {
	s := Status{
		Slide:   pos.Slide + 1,
		Slides:  pos.Slides,
		Step:    pos.Step,
		Steps:   pos.Steps,
		Repeat:  pos.Repeat,
		Repeats: pos.Repeats,
		State:   pos.State.String(),
		Outcome: outcome,
	}
	if err != nil {
		s.Error = err.Error()
	}
	return s
}

// Clicker subscribes to the command topic and publishes the position to the
// status topic.
type Clicker struct {
	client mqtt.Client
	nav    Navigator
	topics config.TopicsConfig
	logger *log.Logger
	wg     sync.WaitGroup
}

// New creates a clicker on an existing client.
func New(client mqtt.Client, nav Navigator, topics config.TopicsConfig, logger *log.Logger) *Clicker {
	if logger == nil {
		logger = log.Default()
	}
	return &Clicker{client: client, nav: nav, topics: topics, logger: logger}
}

// ClientID returns the configured client id or a random one.
func ClientID(cfg config.RemoteConfig) string {
	if cfg.ClientID != "" {
		return cfg.ClientID
	}
	return "revealer-" + uuid.NewString()
}

// Dial connects to the broker and subscribes once connected, again after
// every reconnect.
func Dial(cfg config.RemoteConfig, nav Navigator, logger *log.Logger) (*Clicker, error) {
	c := New(nil, nav, cfg.Topics, logger)

	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(ClientID(cfg)).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(mqtt.Client) {
			if err := c.Subscribe(); err != nil {
				c.logger.Printf("[!] Remote: %v", err)
				return
			}
			c.logger.Printf("[*] Remote: listening on %s", c.topics.Command)
		})
	c.client = mqtt.NewClient(options)

	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.URL, token.Error())
	}
	return c, nil
}

// Subscribe listens on the command topic.
func (c *Clicker) Subscribe() error {
	token := c.client.Subscribe(c.topics.Command, 0, c.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", c.topics.Command, token.Error())
	}
	return nil
}

func (c *Clicker) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	cmd, err := ParseCommand(string(msg.Payload()))
	if err != nil {
		c.logger.Printf("[!] Remote: %v", err)
		return
	}

	// Commands run off the client's callback goroutine; the controller drops
	// the ones arriving while a move is in flight.
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.Execute(cmd)
	}()
}

// Execute runs cmd and publishes the resulting status.
func (c *Clicker) Execute(cmd Command) Status {
	var (
		outcome controller.Outcome
		err     error
	)
	switch cmd.Action {
	case Forward:
		outcome, err = c.nav.Forward()
	case Backward:
		outcome, err = c.nav.Backward()
	case Jump:
		outcome, err = c.nav.JumpTo(cmd.Slide)
	case Reset:
		if err = c.nav.Reset(); errors.Is(err, controller.ErrBusy) {
			outcome, err = controller.Busy, nil
		}
	}
	if err != nil {
		c.logger.Printf("[!] Remote %s: %v", cmd.Action, err)
	}
	return c.Notify(cmd.Action.String(), outcome, err)
}

// Notify publishes the current position after a move made by action, which
// is one of the Action names.
func (c *Clicker) Notify(action string, outcome controller.Outcome, moveErr error) Status {
	label := outcome.String()
	if action == Reset.String() && outcome != controller.Busy {
		label = "reset"
	}
	status := NewStatus(c.nav.Position(), label, moveErr)
	if err := c.Publish(status); err != nil {
		c.logger.Printf("[!] Remote: %v", err)
	}
	return status
}

// Publish sends status to the status topic.
func (c *Clicker) Publish(status Status) error {
	if c.topics.Status == "" {
		return nil
	}
	data, err := yaml.Marshal(status)
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}
	token := c.client.Publish(c.topics.Status, 0, true, data)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", c.topics.Status, token.Error())
	}
	return nil
}

// Close waits for running commands and disconnects.
func (c *Clicker) Close() {
	c.wg.Wait()
	if c.client != nil && c.client.IsConnected() {
		c.client.Disconnect(250)
	}
}
