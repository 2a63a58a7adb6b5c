// internal/services/wardrobe_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type WardrobeServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	users    *UserService
	shares   *ShareService
	wardrobe *WardrobeService
}

func (s *WardrobeServiceTestSuite) SetupSuite() {
	s.db = setupTestDB(s.T())
	s.users = NewUserService(s.db)
	s.shares = NewShareService(s.db)
	s.wardrobe = NewWardrobeService(s.db, s.users)
}

func (s *WardrobeServiceTestSuite) SetupTest() {
	truncateAll(s.T(), s.db)
}

// Mirrors the full sharing scenario: A (regular) and B (influencer) each own
// one passport, A issues a code, C redeems it.
func (s *WardrobeServiceTestSuite) TestSharingScenario() {
	userA := createTestUser(s.T(), s.users, "a@example.com", "User A")
	userB := createTestUser(s.T(), s.users, "b@example.com", "User B")
	markInfluencer(s.T(), s.db, userB)
	userC := createTestUser(s.T(), s.users, "c@example.com", "User C")

	passportA, err := s.users.AddProduct(userA.ID, testPassportRequest("1111111111111"))
	s.Require().NoError(err)
	passportB, err := s.users.AddProduct(userB.ID, testPassportRequest("2222222222222"))
	s.Require().NoError(err)

	token, err := s.shares.IssueShare(userA.ID)
	s.Require().NoError(err)
	_, err = s.shares.RedeemShare(token.Code, userC.ID)
	s.Require().NoError(err)

	// C's saved wardrobes hold exactly A's product under A's summary.
	saved, err := s.wardrobe.GetSavedWardrobes(userC.ID)
	s.Require().NoError(err)
	s.Require().Len(saved, 1)
	s.Equal(userA.ID.String(), saved[0].Owner.ID)
	s.Equal("User A", saved[0].Owner.Name)
	s.False(saved[0].Owner.IsInfluencer)
	s.Require().Len(saved[0].Products, 1)
	s.Equal(passportA.ID, saved[0].Products[0].ID)

	// Influencer wardrobes hold exactly B's product under B's summary.
	influencers, err := s.wardrobe.GetInfluencerWardrobes()
	s.Require().NoError(err)
	s.Require().Len(influencers, 1)
	s.Equal(userB.ID.String(), influencers[0].Owner.ID)
	s.True(influencers[0].Owner.IsInfluencer)
	s.Require().Len(influencers[0].Products, 1)
	s.Equal(passportB.ID, influencers[0].Products[0].ID)

	// C owns nothing.
	own, err := s.wardrobe.GetOwnWardrobe(userC.ID)
	s.Require().NoError(err)
	s.Empty(own)
}

func (s *WardrobeServiceTestSuite) TestSavedWardrobesAreLive() {
	owner := createTestUser(s.T(), s.users, "owner@example.com", "Owner")
	viewer := createTestUser(s.T(), s.users, "viewer@example.com", "Viewer")

	token, err := s.shares.IssueShare(owner.ID)
	s.Require().NoError(err)
	_, err = s.shares.RedeemShare(token.Code, viewer.ID)
	s.Require().NoError(err)

	saved, err := s.wardrobe.GetSavedWardrobes(viewer.ID)
	s.Require().NoError(err)
	s.Require().Len(saved, 1)
	s.Empty(saved[0].Products)

	// A passport added after the link was created shows up on the next read.
	_, err = s.users.AddProduct(owner.ID, testPassportRequest("3333333333333"))
	s.Require().NoError(err)

	saved, err = s.wardrobe.GetSavedWardrobes(viewer.ID)
	s.Require().NoError(err)
	s.Require().Len(saved, 1)
	s.Len(saved[0].Products, 1)
}

func (s *WardrobeServiceTestSuite) TestDuplicateLinksProduceDuplicateEntries() {
	owner := createTestUser(s.T(), s.users, "owner@example.com", "Owner")
	viewer := createTestUser(s.T(), s.users, "viewer@example.com", "Viewer")

	token, err := s.shares.IssueShare(owner.ID)
	s.Require().NoError(err)
	_, err = s.shares.RedeemShare(token.Code, viewer.ID)
	s.Require().NoError(err)
	_, err = s.shares.RedeemShare(token.Code, viewer.ID)
	s.Require().NoError(err)

	// One entry per link, not per owner.
	saved, err := s.wardrobe.GetSavedWardrobes(viewer.ID)
	s.Require().NoError(err)
	s.Len(saved, 2)
}

func (s *WardrobeServiceTestSuite) TestInfluencersVisibleWithoutLinks() {
	influencer := createTestUser(s.T(), s.users, "marta@example.com", "Marta Stylowa")
	markInfluencer(s.T(), s.db, influencer)
	regular := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	_, err := s.users.AddProduct(regular.ID, testPassportRequest("4444444444444"))
	s.Require().NoError(err)

	entries, err := s.wardrobe.GetInfluencerWardrobes()
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(influencer.ID.String(), entries[0].Owner.ID)
}

func (s *WardrobeServiceTestSuite) TestGetOwnWardrobe() {
	owner := createTestUser(s.T(), s.users, "owner@example.com", "Owner")

	first, err := s.users.AddProduct(owner.ID, testPassportRequest("5555555555555"))
	s.Require().NoError(err)
	second, err := s.users.AddProduct(owner.ID, testPassportRequest("6666666666666"))
	s.Require().NoError(err)

	products, err := s.wardrobe.GetOwnWardrobe(owner.ID)
	s.Require().NoError(err)
	s.Require().Len(products, 2)
	s.Equal(first.ID, products[0].ID)
	s.Equal(second.ID, products[1].ID)
}

func TestWardrobeServiceSuite(t *testing.T) {
	suite.Run(t, new(WardrobeServiceTestSuite))
}
