// Package metrics wraps datadog-go to facilitate metric recording.
// Naming convention:
// - Internal process time: *.time
// - External latency: *.latency
// - Error: *.err
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketclient/base/env"
	"github.com/x-xyz/marketclient/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

var (
	initOnce sync.Once
	client   *statsd.Client
	baseTags []string
)

func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	c, err := statsd.NewBuffered(addr, 10)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent")
		return
	}
	client = c
	baseTags = []string{
		"host:", // remove unused host tag
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &metrics{pkgName: pkgName}
}

type metrics struct {
	pkgName string
}

func (m *metrics) tags(tags []string) []string {
	out := append([]string{}, baseTags...)
	for i := 0; i+1 < len(tags); i += 2 {
		out = append(out, tags[i]+":"+tags[i+1])
	}
	return out
}

func (m *metrics) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if client == nil {
		return
	}
	client.Gauge(m.pkgName+"."+key, val, m.tags(tags), 1)
}

func (m *metrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if client == nil {
		return
	}
	client.Count(m.pkgName+"."+key, int64(val), m.tags(tags), 1)
}

func (m *metrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if client == nil {
		return
	}
	client.Histogram(m.pkgName+"."+key, val, m.tags(tags), 1)
}

type ender struct {
	m     *metrics
	key   string
	tags  []string
	start time.Time
}

func (e *ender) End() {
	e.m.BumpHistogram(e.key, float64(time.Since(e.start)/time.Millisecond), e.tags...)
}

func (m *metrics) BumpTime(key string, tags ...string) Ender {
	return &ender{m: m, key: key, tags: tags, start: time.Now()}
}
