package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"babybook-be/internal/entity"
	"babybook-be/internal/repository/contract"
	"babybook-be/internal/repository/specification"
	"babybook-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

func newTestMessage(payload []byte) *message.Message {
	return message.NewMessage(watermill.NewUUID(), payload)
}

// The fakes below back the repository contracts with slices so service
// semantics can be exercised without a database. They interpret the
// same specifications the GORM implementations translate to SQL.

type fakeStore struct {
	mu       sync.Mutex
	users    []*entity.User
	families []*entity.Family
	members  []*entity.FamilyMember
	children []*entity.Child
	pages    []*entity.BookPage
	media    []*entity.Media

	// forced errors per operation, keyed by a short op name such as
	// "member.create" or "page.updateSortOrder"
	failures map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{failures: map[string]error{}}
}

func (s *fakeStore) fail(op string, err error) {
	s.failures[op] = err
}

func (s *fakeStore) failureFor(op string) error {
	return s.failures[op]
}

type pageFilter struct {
	id            *uuid.UUID
	familyId      *uuid.UUID
	pageType      *entity.PageType
	publishedOnly bool
	sequence      bool
}

func pageFilterFrom(specs []specification.Specification) pageFilter {
	var f pageFilter
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.FamilyOwnedBy:
			fid := v.FamilyID
			f.familyId = &fid
		case specification.ByPageType:
			pt := v.PageType
			f.pageType = &pt
		case specification.PublishedOnly:
			f.publishedOnly = true
		case specification.PageSequence:
			f.sequence = true
		}
	}
	return f
}

func (f pageFilter) matches(p *entity.BookPage) bool {
	if p.IsDeleted {
		return false
	}
	if f.id != nil && p.Id != *f.id {
		return false
	}
	if f.familyId != nil && p.FamilyId != *f.familyId {
		return false
	}
	if f.pageType != nil && p.PageType != *f.pageType {
		return false
	}
	if f.publishedOnly && p.Status != entity.PageStatusPublished {
		return false
	}
	return true
}

// --- BookPageRepository ---

type fakePageRepo struct{ s *fakeStore }

func (r *fakePageRepo) Create(_ context.Context, page *entity.BookPage) error {
	if err := r.s.failureFor("page.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *page
	cp.Content = append(json.RawMessage(nil), page.Content...)
	r.s.pages = append(r.s.pages, &cp)
	return nil
}

func (r *fakePageRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.BookPage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := pageFilterFrom(specs)
	for _, p := range r.s.pages {
		if f.matches(p) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.BookPage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := pageFilterFrom(specs)
	var result []*entity.BookPage
	for _, p := range r.s.pages {
		if f.matches(p) {
			cp := *p
			result = append(result, &cp)
		}
	}
	if f.sequence {
		sort.SliceStable(result, func(i, j int) bool {
			if !result[i].PageDate.Equal(result[j].PageDate) {
				return result[i].PageDate.Before(result[j].PageDate)
			}
			return result[i].SortOrder < result[j].SortOrder
		})
	}
	return result, nil
}

func (r *fakePageRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	pages, err := r.FindAll(context.Background(), specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(pages)), nil
}

func (r *fakePageRepo) find(id, familyId uuid.UUID) *entity.BookPage {
	for _, p := range r.s.pages {
		if p.Id == id && p.FamilyId == familyId && !p.IsDeleted {
			return p
		}
	}
	return nil
}

func (r *fakePageRepo) UpdateContent(_ context.Context, id, familyId uuid.UUID, content json.RawMessage) error {
	if err := r.s.failureFor("page.updateContent"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.find(id, familyId); p != nil {
		p.Content = append(json.RawMessage(nil), content...)
		now := time.Now()
		p.UpdatedAt = &now
	}
	return nil
}

func (r *fakePageRepo) UpdateStatus(_ context.Context, id, familyId uuid.UUID, status entity.PageStatus) error {
	if err := r.s.failureFor("page.updateStatus"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.find(id, familyId); p != nil {
		p.Status = status
	}
	return nil
}

func (r *fakePageRepo) UpdateSortOrder(_ context.Context, id, familyId uuid.UUID, sortOrder int) error {
	if err := r.s.failureFor("page.updateSortOrder"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.find(id, familyId); p != nil {
		p.SortOrder = sortOrder
	}
	return nil
}

func (r *fakePageRepo) SoftDelete(_ context.Context, id, familyId uuid.UUID) error {
	if err := r.s.failureFor("page.softDelete"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.find(id, familyId); p != nil {
		now := time.Now()
		p.DeletedAt = &now
		p.IsDeleted = true
	}
	return nil
}

// --- FamilyRepository ---

type fakeFamilyRepo struct{ s *fakeStore }

func (r *fakeFamilyRepo) Create(_ context.Context, family *entity.Family) error {
	if err := r.s.failureFor("family.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *family
	r.s.families = append(r.s.families, &cp)
	return nil
}

func (r *fakeFamilyRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Family, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.families {
		match := true
		for _, spec := range specs {
			switch v := spec.(type) {
			case specification.ByID:
				if f.Id != v.ID {
					match = false
				}
			}
		}
		if match {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFamilyRepo) UpdateName(_ context.Context, id uuid.UUID, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.families {
		if f.Id == id {
			f.Name = name
		}
	}
	return nil
}

func (r *fakeFamilyRepo) UpdateTheme(_ context.Context, id uuid.UUID, themeId string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.families {
		if f.Id == id {
			f.ThemeId = themeId
		}
	}
	return nil
}

// --- FamilyMemberRepository ---

type fakeMemberRepo struct{ s *fakeStore }

func (r *fakeMemberRepo) Create(_ context.Context, member *entity.FamilyMember) error {
	if err := r.s.failureFor("member.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.members {
		if m.FamilyId == member.FamilyId && m.Email == member.Email {
			return errors.New(`duplicate key value violates unique constraint "idx_family_members_family_email"`)
		}
	}
	cp := *member
	r.s.members = append(r.s.members, &cp)
	return nil
}

func (r *fakeMemberRepo) Update(_ context.Context, member *entity.FamilyMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, m := range r.s.members {
		if m.Id == member.Id {
			cp := *member
			r.s.members[i] = &cp
		}
	}
	return nil
}

func (r *fakeMemberRepo) matches(m *entity.FamilyMember, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByUserID:
			if m.UserId == nil || *m.UserId != v.UserID {
				return false
			}
		case specification.ByEmail:
			if m.Email != v.Email {
				return false
			}
		case specification.ByInviteToken:
			if m.InviteToken == nil || *m.InviteToken != v.Token {
				return false
			}
		case specification.FamilyOwnedBy:
			if m.FamilyId != v.FamilyID {
				return false
			}
		}
	}
	return true
}

func (r *fakeMemberRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.FamilyMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.members {
		if r.matches(m, specs) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMemberRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.FamilyMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*entity.FamilyMember
	for _, m := range r.s.members {
		if r.matches(m, specs) {
			cp := *m
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeMemberRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	members, err := r.FindAll(context.Background(), specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(members)), nil
}

// --- ChildRepository ---

type fakeChildRepo struct{ s *fakeStore }

func (r *fakeChildRepo) Create(_ context.Context, child *entity.Child) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *child
	r.s.children = append(r.s.children, &cp)
	return nil
}

func (r *fakeChildRepo) Update(_ context.Context, child *entity.Child) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.children {
		if c.Id == child.Id {
			cp := *child
			r.s.children[i] = &cp
		}
	}
	return nil
}

func (r *fakeChildRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Child, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.children {
		match := true
		for _, spec := range specs {
			switch v := spec.(type) {
			case specification.FamilyOwnedBy:
				if c.FamilyId != v.FamilyID {
					match = false
				}
			case specification.ByID:
				if c.Id != v.ID {
					match = false
				}
			}
		}
		if match {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// --- UserRepository ---

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, u := range r.s.users {
		if u.Id == user.Id {
			cp := *user
			r.s.users[i] = &cp
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		match := true
		for _, spec := range specs {
			switch v := spec.(type) {
			case specification.ByID:
				if u.Id != v.ID {
					match = false
				}
			case specification.ByEmail:
				if u.Email != v.Email {
					match = false
				}
			}
		}
		if match {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateRefreshToken(_ context.Context, _ *entity.UserRefreshToken) error {
	return nil
}

func (r *fakeUserRepo) FindRefreshTokenByHash(_ context.Context, _ string) (*entity.UserRefreshToken, error) {
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(_ context.Context, _ string) error {
	return nil
}

func (r *fakeUserRepo) CreateProvider(_ context.Context, _ *entity.UserProvider) error {
	return nil
}

func (r *fakeUserRepo) FindProvider(_ context.Context, _, _ string) (*entity.UserProvider, error) {
	return nil, nil
}

// --- MediaRepository ---

type fakeMediaRepo struct{ s *fakeStore }

func (r *fakeMediaRepo) Create(_ context.Context, media *entity.Media) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *media
	r.s.media = append(r.s.media, &cp)
	return nil
}

func (r *fakeMediaRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Media, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*entity.Media
	for _, m := range r.s.media {
		match := true
		for _, spec := range specs {
			switch v := spec.(type) {
			case specification.FamilyOwnedBy:
				if m.FamilyId != v.FamilyID {
					match = false
				}
			}
		}
		if match {
			cp := *m
			result = append(result, &cp)
		}
	}
	return result, nil
}

// --- UnitOfWork ---

type fakeUow struct{ s *fakeStore }

func (u *fakeUow) Begin(_ context.Context) error { return nil }
func (u *fakeUow) Commit() error                 { return nil }
func (u *fakeUow) Rollback() error               { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository     { return &fakeUserRepo{s: u.s} }
func (u *fakeUow) FamilyRepository() contract.FamilyRepository { return &fakeFamilyRepo{s: u.s} }
func (u *fakeUow) FamilyMemberRepository() contract.FamilyMemberRepository {
	return &fakeMemberRepo{s: u.s}
}
func (u *fakeUow) ChildRepository() contract.ChildRepository       { return &fakeChildRepo{s: u.s} }
func (u *fakeUow) BookPageRepository() contract.BookPageRepository { return &fakePageRepo{s: u.s} }
func (u *fakeUow) MediaRepository() contract.MediaRepository       { return &fakeMediaRepo{s: u.s} }

type fakeUowFactory struct{ s *fakeStore }

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUow{s: f.s}
}

// --- support fakes ---

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.deletes = append(c.deletes, key)
	}
}

type fakeMailer struct {
	mu      sync.Mutex
	invites []string
}

func (m *fakeMailer) SendInvite(toEmail, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invites = append(m.invites, toEmail)
	return nil
}

// --- fixture helpers ---

type fixture struct {
	store   *fakeStore
	factory *fakeUowFactory

	ownerId  uuid.UUID
	viewerId uuid.UUID
	familyId uuid.UUID
	childId  uuid.UUID
}

func newFixture() *fixture {
	store := newFakeStore()
	f := &fixture{
		store:    store,
		factory:  &fakeUowFactory{s: store},
		ownerId:  uuid.New(),
		viewerId: uuid.New(),
		familyId: uuid.New(),
		childId:  uuid.New(),
	}

	now := time.Now()
	store.users = append(store.users,
		&entity.User{Id: f.ownerId, Email: "owner@example.com", FullName: "Owner", CreatedAt: now},
		&entity.User{Id: f.viewerId, Email: "viewer@example.com", FullName: "Viewer", CreatedAt: now},
	)
	store.families = append(store.families, &entity.Family{
		Id: f.familyId, Name: "Smith", ThemeId: "cotton-candy", CreatedAt: now,
	})
	ownerId := f.ownerId
	viewerId := f.viewerId
	store.members = append(store.members,
		&entity.FamilyMember{
			Id: uuid.New(), FamilyId: f.familyId, UserId: &ownerId,
			Email: "owner@example.com", Role: entity.MemberRoleOwner,
			InviteStatus: entity.InviteStatusAccepted, CreatedAt: now,
		},
		&entity.FamilyMember{
			Id: uuid.New(), FamilyId: f.familyId, UserId: &viewerId,
			Email: "viewer@example.com", Role: entity.MemberRoleViewer,
			InviteStatus: entity.InviteStatusAccepted, CreatedAt: now,
		},
	)
	store.children = append(store.children, &entity.Child{
		Id: f.childId, FamilyId: f.familyId, Name: "Emma",
		DateOfBirth: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), CreatedAt: now,
	})

	return f
}

func (f *fixture) addPage(pageType entity.PageType, pageDate string, sortOrder int, status entity.PageStatus, content string) uuid.UUID {
	date, _ := time.Parse("2006-01-02", pageDate)
	page := &entity.BookPage{
		Id:        uuid.New(),
		FamilyId:  f.familyId,
		ChildId:   f.childId,
		PageType:  pageType,
		PageDate:  date,
		SortOrder: sortOrder,
		Status:    status,
		Content:   json.RawMessage(content),
		CreatedAt: time.Now(),
	}
	f.store.pages = append(f.store.pages, page)
	return page.Id
}
