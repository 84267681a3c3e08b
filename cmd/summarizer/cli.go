package main

// CLI defines the command-line interface structure for Kong. Flags left at
// their unset sentinels fall back to the YAML config file defaults.
type CLI struct {
	Source string `arg:"" help:"File path, S3 URI (s3://bucket/key), or '-' for stdin"`

	PII         string  `name:"pii" enum:",redact,block,off" default:"" help:"PII handling: redact (mask before summarization), block (refuse if PII detected), off (default from config)"`
	Model       string  `help:"Model ID for summarization (default from config)"`
	Region      string  `help:"AWS region (default: from env or profile)"`
	MaxTokens   int     `name:"max-tokens" default:"0" help:"Max tokens in summary (default from config)"`
	Temperature float32 `default:"-1" help:"Sampling temperature (default from config)"`
	Output      string  `short:"o" help:"Write summary to file (default: stdout)"`
	Config      string  `help:"Path to a YAML config file" type:"path"`
	LogLevel    string  `name:"log-level" default:"info" help:"Log level (debug, info, warn, error)"`
	LogFile     string  `name:"log-file" help:"Also write logs to this file (default: stderr only)"`
}
