package codec

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"github.com/allisson/fieldcrypt/metrics"
)

// metricsDomain labels every codec metric.
const metricsDomain = "codec"

// cipherWithMetrics decorates a Cipher with metrics instrumentation.
type cipherWithMetrics struct {
	next    Cipher
	metrics metrics.BusinessMetrics
}

// NewCipherWithMetrics wraps a Cipher with metrics recording. Every operation
// records a count and a duration labeled with the operation name and a
// success/error status.
func NewCipherWithMetrics(cipher Cipher, m metrics.BusinessMetrics) Cipher {
	return &cipherWithMetrics{
		next:    cipher,
		metrics: m,
	}
}

// record emits the counter and histogram samples for one finished operation.
// Codec operations carry no context of their own, so samples are recorded
// against the background context.
func (c *cipherWithMetrics) record(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := context.Background()
	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func (c *cipherWithMetrics) EncryptText(value string) (string, error) {
	start := time.Now()
	content, err := c.next.EncryptText(value)
	c.record("encrypt_text", start, err)
	return content, err
}

func (c *cipherWithMetrics) DecryptText(content string) (string, error) {
	start := time.Now()
	value, err := c.next.DecryptText(content)
	c.record("decrypt_text", start, err)
	return value, err
}

func (c *cipherWithMetrics) EncryptBool(value bool) (string, error) {
	start := time.Now()
	content, err := c.next.EncryptBool(value)
	c.record("encrypt_bool", start, err)
	return content, err
}

func (c *cipherWithMetrics) DecryptBool(content string) (bool, error) {
	start := time.Now()
	value, err := c.next.DecryptBool(content)
	c.record("decrypt_bool", start, err)
	return value, err
}

func (c *cipherWithMetrics) EncryptDate(value civil.Date) (string, error) {
	start := time.Now()
	content, err := c.next.EncryptDate(value)
	c.record("encrypt_date", start, err)
	return content, err
}

func (c *cipherWithMetrics) DecryptDate(content string) (civil.Date, error) {
	start := time.Now()
	value, err := c.next.DecryptDate(content)
	c.record("decrypt_date", start, err)
	return value, err
}

func (c *cipherWithMetrics) EncryptTime(value civil.Time) (string, error) {
	start := time.Now()
	content, err := c.next.EncryptTime(value)
	c.record("encrypt_time", start, err)
	return content, err
}

func (c *cipherWithMetrics) DecryptTime(content string) (civil.Time, error) {
	start := time.Now()
	value, err := c.next.DecryptTime(content)
	c.record("decrypt_time", start, err)
	return value, err
}

func (c *cipherWithMetrics) EncryptDateTime(value time.Time) (string, error) {
	start := time.Now()
	content, err := c.next.EncryptDateTime(value)
	c.record("encrypt_datetime", start, err)
	return content, err
}

func (c *cipherWithMetrics) DecryptDateTime(content string) (time.Time, error) {
	start := time.Now()
	value, err := c.next.DecryptDateTime(content)
	c.record("decrypt_datetime", start, err)
	return value, err
}

func (c *cipherWithMetrics) TokenIssuedAt(content string) (time.Time, error) {
	start := time.Now()
	value, err := c.next.TokenIssuedAt(content)
	c.record("token_issued_at", start, err)
	return value, err
}
