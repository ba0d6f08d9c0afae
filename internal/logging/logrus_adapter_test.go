package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok)
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok)
			}
		})
	}
}

func TestLogrusAdapter_DebugFilteredAtInfo(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)
	logger.Debug("hidden", Field{Key: FieldMerchant, Value: "swiggy"})
	assert.Empty(t, buf.String())

	logger.Info("shown", Field{Key: FieldMerchant, Value: "swiggy"})
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "merchant=swiggy")
}

func TestLogrusAdapter_ChainedFields(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldCategory, "Dining").
		WithFields(Field{Key: FieldSource, Value: "fuzzy"}).
		WithError(errors.New("boom")).
		Error("categorization failed")

	output := buf.String()
	assert.Contains(t, output, "categorization failed")
	assert.Contains(t, output, "category=Dining")
	assert.Contains(t, output, "source=fuzzy")
	assert.Contains(t, output, "boom")
}

func TestConvertFields(t *testing.T) {
	logrusFields := convertFields([]Field{
		{Key: "key1", Value: "value1"},
		{Key: "key2", Value: 42},
	})
	assert.Len(t, logrusFields, 2)
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Len(t, convertFields(nil), 0)
}

func TestMockLogger_SharesEntriesWithDerivedLoggers(t *testing.T) {
	mock := NewMockLogger()
	mock.WithField(FieldBatchSize, 3).Warn("batch failed")
	mock.Info("done")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.True(t, mock.HasEntry("WARN", "batch failed"))
	assert.Equal(t, FieldBatchSize, entries[0].Fields[0].Key)
	assert.Len(t, mock.GetEntriesByLevel("INFO"), 1)
}

func TestAdaptersImplementInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
