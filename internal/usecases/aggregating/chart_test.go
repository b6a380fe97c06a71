package aggregating

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
)

func TestBucketizeByDay(t *testing.T) {
	startedAts := []string{
		"2024-01-01T08:00:00Z",
		"2024-01-01T23:30:00Z",
		"2024-01-02T10:00:00Z",
		"timestamp-invalido",
	}

	buckets := bucketizeByDay(startedAts)

	require.Len(t, buckets, 2)
	assert.Equal(t, domain.ChartBucket{ISODate: "2024-01-01", Count: 2}, buckets[0])
	assert.Equal(t, domain.ChartBucket{ISODate: "2024-01-02", Count: 1}, buckets[1])
}

func TestBucketizeByDay_DataEmUTC(t *testing.T) {
	// 23h em UTC-4 já é o dia seguinte em UTC
	buckets := bucketizeByDay([]string{"2024-06-10T23:00:00-04:00"})

	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-06-11", buckets[0].ISODate)
}

func TestBucketizeByDay_CorteDeTrintaDias(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	startedAts := make([]string, 0, 45)
	for day := 0; day < 45; day++ {
		startedAts = append(startedAts, base.AddDate(0, 0, day).Format(time.RFC3339))
	}

	buckets := bucketizeByDay(startedAts)

	require.Len(t, buckets, 30)
	// Só os 30 dias mais recentes sobrevivem, em ordem ascendente
	assert.Equal(t, "2024-01-16", buckets[0].ISODate)
	assert.Equal(t, "2024-02-14", buckets[29].ISODate)

	for i := 1; i < len(buckets); i++ {
		assert.Less(t, buckets[i-1].ISODate, buckets[i].ISODate,
			fmt.Sprintf("bucket %d fora de ordem", i))
	}
}

func TestBucketizeByDay_SemEntradaValida(t *testing.T) {
	assert.Empty(t, bucketizeByDay(nil))
	assert.Empty(t, bucketizeByDay([]string{"nada", ""}))
}
