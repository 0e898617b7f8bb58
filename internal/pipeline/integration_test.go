package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/generator"
	"github.com/ajitpratap0/medallion/pkg/storage"
	"github.com/ajitpratap0/medallion/pkg/testutil"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

type fileLakeSuite struct {
	testutil.LakeSuite
	runner *Runner
}

func TestFileLake(t *testing.T) {
	testutil.IntegrationTest(t)
	suite.Run(t, new(fileLakeSuite))
}

func (s *fileLakeSuite) SetupTest() {
	s.LakeSuite.SetupTest()
	faker := testutil.Faker(2024)
	gen, err := generator.New(generator.Deps{
		Provider: testutil.Provider(s.T(), faker),
		Rand:     smallCounts{faker},
		Clock:    s.Clock(),
	})
	s.Require().NoError(err)
	s.runner, err = NewRunner(s.Store(), gen, &RunnerConfig{
		Clock:       s.Clock(),
		Compression: compression.Zstd,
	}, s.Logger())
	s.Require().NoError(err)
}

func (s *fileLakeSuite) TestRunAllPopulatesEveryBucket() {
	results, err := s.runner.RunAll(s.Context())
	s.Require().NoError(err)
	s.Require().Len(results, len(zone.All()))

	for _, res := range results {
		s.RequireObjectFile(res.Bucket, res.Key)

		obj, err := s.Store().Get(s.Context(), res.Bucket, res.Key)
		s.Require().NoError(err)
		s.Equal(string(res.Zone), obj.Metadata[storage.MetaZone])

		summary, err := s.runner.Inspect(s.Context(), res.Bucket, res.Key)
		s.Require().NoError(err)
		s.Equal(res.Records, summary.Rows)
	}
	s.Contains(results[0].Key, ".json.zst")
	s.Contains(results[1].Key, ".parquet")
}

func (s *fileLakeSuite) TestSecondProvisionFindsExistingBuckets() {
	_, err := s.runner.Provision(s.Context())
	s.Require().NoError(err)

	again, err := s.runner.Provision(s.Context())
	s.Require().NoError(err)
	for _, res := range again {
		s.Equal(storage.BucketAlreadyExists, res.Status, res.Bucket)
	}
}

func (s *fileLakeSuite) TestRunsInDifferentSecondsKeepBothObjects() {
	_, err := s.runner.Provision(s.Context())
	s.Require().NoError(err)

	first, err := s.runner.Run(s.Context(), zone.Bronze)
	s.Require().NoError(err)
	s.Clock().Advance(2 * time.Second)
	second, err := s.runner.Run(s.Context(), zone.Bronze)
	s.Require().NoError(err)

	s.NotEqual(first.Key, second.Key)
	s.RequireObjectFile(first.Bucket, first.Key)
	s.RequireObjectFile(second.Bucket, second.Key)
}
