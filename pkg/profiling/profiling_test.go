package profiling

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/mentorhub/mentorhub-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileTypes_Default(t *testing.T) {
	got, err := parseProfileTypes(" ")
	require.NoError(t, err)
	assert.Equal(t, defaultProfileTypes, got)
}

func TestParseProfileTypes_Custom(t *testing.T) {
	got, err := parseProfileTypes("cpu, alloc_space,,mutex,cpu")
	require.NoError(t, err)

	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
	}, got)
}

func TestParseProfileTypes_Invalid(t *testing.T) {
	_, err := parseProfileTypes("cpu,unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported O11Y_PROFILING_SAMPLE_TYPES")
}

func TestApplicationName(t *testing.T) {
	svc := ServiceInfo{Name: "mentorhub-api", Namespace: "mentorhub-dev", Environment: "production", Version: "2.0.0", InstanceID: "inst-1"}
	assert.Equal(t,
		"mentorhub-api{service_name=mentorhub-api,namespace=mentorhub-dev,environment=production,service_version=2.0.0,instance=inst-1}",
		applicationName("", svc))

	assert.Equal(t, "cards{service_name=cards}", applicationName("cards", ServiceInfo{Name: "cards"}))
	assert.Equal(t, "cards", applicationName("cards", ServiceInfo{}))
}

func TestStart_Disabled(t *testing.T) {
	stop, err := Start(config.ProfilingConfig{Enabled: false}, ServiceInfo{})
	require.NoError(t, err)
	stop()
}

func TestStart_RequiresEndpoint(t *testing.T) {
	_, err := Start(config.ProfilingConfig{Enabled: true, Endpoint: "  "}, ServiceInfo{})
	require.Error(t, err)
}
