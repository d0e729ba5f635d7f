package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	apiv1alpha1 "github.com/uzochukwuV/massacombat/internal/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/config"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/pkg/idgen"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

type ServerTestSuite struct {
	suite.Suite

	ctx context.Context
	cfg *config.Config
	cat *config.Catalog
	svc *services

	server *grpc.Server
	conn   *grpc.ClientConn
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		GRPCPort:       50051,
		Storage:        config.StorageMemory,
		SQLiteDSN:      "file::memory:",
		WildcardChance: 10,
		WildcardWindow: 5 * time.Minute,
		MaxTurns:       100,
		GuardTTL:       10 * time.Second,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

func (s *ServerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = testConfig()

	cat, err := config.LoadCatalog("")
	s.Require().NoError(err)
	s.cat = cat

	s.svc, err = newServices(s.ctx, s.cfg, s.cat, appOptions{
		battleIDs:   idgen.NewSequential("battle"),
		characterID: idgen.NewSequential("char"),
		db:          testutils.CreateTestDB(s.T()),
	})
	s.Require().NoError(err)

	srv, _, err := newGRPCServer(s.svc, zap.NewNop())
	s.Require().NoError(err)
	s.server = srv

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.svc.Close()
}

func (s *ServerTestSuite) TestHealthReportsBothServices() {
	health := grpc_health_v1.NewHealthClient(s.conn)
	for _, name := range []string{"", apiv1alpha1.BattleServiceName, apiv1alpha1.CharacterServiceName} {
		resp, err := health.Check(s.ctx, &grpc_health_v1.HealthCheckRequest{Service: name})
		s.Require().NoError(err)
		s.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.Status, name)
	}
}

func (s *ServerTestSuite) TestMintAndBattleOverTheWire() {
	characters := apiv1alpha1.NewCharacterServiceClient(s.conn)
	battles := apiv1alpha1.NewBattleServiceClient(s.conn)

	alice, err := characters.MintCharacter(s.ctx, &apiv1alpha1.MintCharacterRequest{
		Owner: testutils.AliceAddress,
		Name:  "Alice",
		Class: entities.ClassWarrior,
	})
	s.Require().NoError(err)
	s.Equal("char-1", alice.Character.ID)
	s.Equal(uint32(120), alice.Character.MaxHP)

	bob, err := characters.MintCharacter(s.ctx, &apiv1alpha1.MintCharacterRequest{
		Owner: testutils.BobAddress,
		Name:  "Bob",
		Class: entities.ClassTank,
	})
	s.Require().NoError(err)

	created, err := battles.CreateBattle(s.ctx, &apiv1alpha1.CreateBattleRequest{
		Character1ID: alice.Character.ID,
		Character2ID: bob.Character.ID,
		Caller:       testutils.AliceAddress,
	})
	s.Require().NoError(err)
	s.Equal("battle-1", created.Battle.ID)
	s.Equal(entities.BattleStateActive, created.Battle.State)

	_, err = battles.ExecuteTurn(s.ctx, &apiv1alpha1.ExecuteTurnRequest{
		BattleID:    created.Battle.ID,
		CharacterID: bob.Character.ID,
		Caller:      testutils.BobAddress,
	})
	s.Require().Error(err)
	s.True(errors.HasReason(errors.FromGRPCError(err), errors.ReasonWrongTurn))
}

func (s *ServerTestSuite) TestCatalogEquipmentIsSeeded() {
	characters := apiv1alpha1.NewCharacterServiceClient(s.conn)
	resp, err := characters.ListEquipment(s.ctx, &apiv1alpha1.ListEquipmentRequest{
		FilterSlot: true,
		Slot:       entities.SlotArmor,
	})
	s.Require().NoError(err)
	s.Len(resp.Equipment, 2)

	// seeding twice keeps the existing items
	s.Require().NoError(seedEquipment(s.ctx, s.svc.equipment, s.cat.Equipment))
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	rec := httptest.NewRecorder()
	metricsMux(s.svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "massacombat_battles_created_total")

	rec = httptest.NewRecorder()
	metricsMux(s.svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestUnknownStorageBackend() {
	cfg := testConfig()
	cfg.Storage = "postgres"
	_, err := newStores(cfg)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServerTestSuite) TestSimulateIsDeterministic() {
	spec := simulationSpec{
		Seed:            7,
		Classes:         [2]entities.Class{entities.ClassWarrior, entities.ClassAssassin},
		Weapons:         [2]string{"iron-sword", ""},
		AcceptWildcards: 50,
	}

	var first, second bytes.Buffer
	r1, err := simulate(s.ctx, s.cfg, s.cat, spec, &first)
	s.Require().NoError(err)
	r2, err := simulate(s.ctx, s.cfg, s.cat, spec, &second)
	s.Require().NoError(err)

	s.Equal(first.String(), second.String())
	s.Equal(r1.Turns, r2.Turns)
	s.Equal(r1.Settlement, r2.Settlement)

	s.True(r1.Battle.Finalized)
	s.Equal(entities.BattleStateCompleted, r1.Battle.State)
	s.Len(r1.Standings, 2)
	s.Positive(r1.Turns)
	s.Contains(first.String(), "battle-1: char-1 vs char-2")
}
