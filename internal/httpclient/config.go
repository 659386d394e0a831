package httpclient

import "fmt"

// getFingerprint returns a deterministic identity string for the
// configuration. Clients are cached by fingerprint, so every field that
// affects transport behavior must contribute to it.
func (c *Config) getFingerprint() string {
	return fmt.Sprintf("ct=%s|rt=%s|it=%s|mic=%d|mich=%d|rht=%s|dc=%t|wbs=%d|rbs=%d|h2=%t|tls=%s|ect=%s|proxy=%s",
		c.ConnectTimeout,
		c.RequestTimeout,
		c.IdleConnTimeout,
		c.MaxIdleConns,
		c.MaxIdleConnsPerHost,
		c.ResponseHeaderTimeout,
		c.DisableCompression,
		c.WriteBufferSize,
		c.ReadBufferSize,
		c.ForceAttemptHTTP2,
		c.TLSHandshakeTimeout,
		c.ExpectContinueTimeout,
		c.ProxyURL,
	)
}
