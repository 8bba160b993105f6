package v1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	v1 "github.com/KirkDiggler/monster-battle/internal/handlers/grpc/v1"
	"github.com/KirkDiggler/monster-battle/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/monster-battle/internal/orchestrators/battle/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *battlemock.MockService
	handler     *v1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = battlemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1.NewHandler(&v1.HandlerConfig{BattleService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) snapshot() *battle.BattleSnapshot {
	return &battle.BattleSnapshot{
		BattleID: "battle_1",
		Turn:     1,
		Outcome:  engine.OutcomeOngoing,
		Player: &battle.CombatantSnapshot{
			ID:      "battle_1-player",
			Species: "Striker",
			Level:   50,
			HP:      78,
			MaxHP:   95,
			Ability: "none",
			Stages:  map[string]int{"attack": 1},
			Moves:   []battle.MoveSnapshot{{ID: "strike", Name: "Strike", PP: 34, MaxPP: 35}},
		},
		Opponent: &battle.CombatantSnapshot{
			ID:      "battle_1-opponent",
			Species: "Bulwark",
			Level:   50,
			HP:      56,
			MaxHP:   80,
			Ability: "none",
			Status:  "par",
		},
	}
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := v1.NewHandler(nil)
	s.Assert().Error(err)

	_, err = v1.NewHandler(&v1.HandlerConfig{})
	s.Assert().Error(err)
}

func (s *HandlerTestSuite) TestStartBattle() {
	s.Run("maps the request and response", func() {
		seed := int64(7)
		s.mockService.EXPECT().
			StartBattle(s.ctx, &battle.StartBattleInput{
				OwnerID:  "trainer-1",
				Player:   battle.CombatantSpec{Species: "Striker", Level: 50},
				Opponent: battle.CombatantSpec{SaveID: "save_1"},
				Seed:     &seed,
			}).
			Return(&battle.StartBattleOutput{Battle: s.snapshot()}, nil)

		resp, err := s.handler.StartBattle(s.ctx, s.request(map[string]any{
			"owner_id": "trainer-1",
			"player":   map[string]any{"species": "Striker", "level": 50},
			"opponent": map[string]any{"save_id": "save_1"},
			"seed":     7,
		}))
		s.Require().NoError(err)

		b := resp.GetFields()["battle"].GetStructValue()
		s.Require().NotNil(b)
		s.Assert().Equal("battle_1", b.GetFields()["battle_id"].GetStringValue())
		s.Assert().Equal("ongoing", b.GetFields()["outcome"].GetStringValue())

		player := b.GetFields()["player"].GetStructValue().GetFields()
		s.Assert().Equal(float64(78), player["hp"].GetNumberValue())
		s.Assert().Equal(float64(1), player["stages"].GetStructValue().GetFields()["attack"].GetNumberValue())
		moves := player["moves"].GetListValue().GetValues()
		s.Require().Len(moves, 1)
		s.Assert().Equal(float64(34), moves[0].GetStructValue().GetFields()["pp"].GetNumberValue())

		opponent := b.GetFields()["opponent"].GetStructValue().GetFields()
		s.Assert().Equal("par", opponent["status"].GetStringValue())
		_, hasVolatile := opponent["volatile_status"]
		s.Assert().False(hasVolatile)
	})

	s.Run("orchestrator errors keep their code", func() {
		s.mockService.EXPECT().
			StartBattle(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("species Missingno not found"))

		_, err := s.handler.StartBattle(s.ctx, s.request(map[string]any{
			"player": map[string]any{"species": "Missingno", "level": 5},
		}))
		s.Assert().Equal(codes.NotFound, status.Code(err))
	})

	s.Run("malformed request", func() {
		_, err := s.handler.StartBattle(s.ctx, s.request(map[string]any{"player": "Striker"}))
		s.Assert().Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestUseMove() {
	s.mockService.EXPECT().
		UseMove(s.ctx, &battle.UseMoveInput{BattleID: "battle_1", MoveIndex: 2}).
		Return(&battle.UseMoveOutput{
			Turn: &engine.TurnResult{
				Number:  1,
				Outcome: engine.OutcomeOngoing,
				Actions: []engine.ActionResult{{
					Side:       engine.SidePlayer,
					MoveID:     "strike",
					MoveResult: engine.MoveResult{Hits: []engine.DamageDetails{{Damage: 24, Critical: 1.5, TypeEffectiveness: 1}}},
				}},
			},
			Events: []engine.Event{{Kind: engine.EventMessage, Message: "Striker used Strike"}},
			Battle: s.snapshot(),
		}, nil)

	resp, err := s.handler.UseMove(s.ctx, s.request(map[string]any{"battle_id": "battle_1", "move_index": 2}))
	s.Require().NoError(err)

	turn := resp.GetFields()["turn"].GetStructValue().GetFields()
	s.Assert().Equal(float64(1), turn["number"].GetNumberValue())
	actions := turn["actions"].GetListValue().GetValues()
	s.Require().Len(actions, 1)
	hit := actions[0].GetStructValue().GetFields()["hits"].GetListValue().GetValues()[0].GetStructValue().GetFields()
	s.Assert().Equal(float64(24), hit["damage"].GetNumberValue())
	s.Assert().True(hit["critical"].GetBoolValue())

	evts := resp.GetFields()["events"].GetListValue().GetValues()
	s.Require().Len(evts, 1)
	s.Assert().Equal("Striker used Strike", evts[0].GetStructValue().GetFields()["message"].GetStringValue())
}

func (s *HandlerTestSuite) TestSaveAndEnd() {
	s.Run("save combatant", func() {
		s.mockService.EXPECT().
			SaveCombatant(s.ctx, &battle.SaveCombatantInput{BattleID: "battle_1", Side: engine.SideOpponent}).
			Return(&battle.SaveCombatantOutput{SaveID: "save_3"}, nil)

		resp, err := s.handler.SaveCombatant(s.ctx, s.request(map[string]any{"battle_id": "battle_1", "side": "opponent"}))
		s.Require().NoError(err)
		s.Assert().Equal("save_3", resp.GetFields()["save_id"].GetStringValue())
	})

	s.Run("end battle failure", func() {
		s.mockService.EXPECT().
			EndBattle(s.ctx, &battle.EndBattleInput{BattleID: "battle_1", SavePlayer: true}).
			Return(nil, errors.FailedPrecondition("battle battle_1 has no owner to save for"))

		_, err := s.handler.EndBattle(s.ctx, s.request(map[string]any{"battle_id": "battle_1", "save_player": true}))
		s.Assert().Equal(codes.FailedPrecondition, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestOverGRPC() {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	v1.RegisterBattleServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockService.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "battle_1"}).
		Return(&battle.GetBattleOutput{Battle: s.snapshot()}, nil)
	s.mockService.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "battle_404"}).
		Return(nil, errors.NotFound("battle not found").WithMeta("battle_id", "battle_404"))

	client := v1.NewBattleServiceClient(conn)

	resp, err := client.Call(s.ctx, v1.MethodGetBattle, s.request(map[string]any{"battle_id": "battle_1"}))
	s.Require().NoError(err)
	s.Assert().Equal("battle_1", resp.GetFields()["battle"].GetStructValue().GetFields()["battle_id"].GetStringValue())

	_, err = client.Call(s.ctx, v1.MethodGetBattle, s.request(map[string]any{"battle_id": "battle_404"}))
	s.Require().Error(err)
	converted := errors.FromGRPCError(err)
	s.Assert().True(errors.IsNotFound(converted))
	s.Assert().Equal("battle_404", errors.GetMeta(converted)["battle_id"])
}
