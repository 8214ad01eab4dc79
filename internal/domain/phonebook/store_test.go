package phonebook

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonebook/core/internal/domain/entities"
)

const maxID = "340282366920938463463374607431768211455"

func contact(name, number string) entities.Contact {
	return entities.Contact{Name: name, Number: number}
}

func ids(s *Store) []string {
	out := make([]string, 0, s.Len())
	for _, c := range s.Snapshot() {
		out = append(out, c.ID.String())
	}
	return out
}

func TestStore_Scenario(t *testing.T) {
	s := New()

	id, err := s.Add(contact("Ann Lee", "111"))
	require.NoError(t, err)
	assert.Equal(t, entities.NewID(1), id)

	id, err = s.Add(contact("Bob King", "222"))
	require.NoError(t, err)
	assert.Equal(t, entities.NewID(2), id)

	_, err = s.Add(contact("Ann   Lee", "999"))
	require.ErrorIs(t, err, entities.ErrDuplicateName)
	assert.Equal(t, 2, s.Len())

	got, ok := s.GetByID(entities.NewID(2))
	require.True(t, ok)
	assert.Equal(t, "Bob King", got.Name)
	assert.Equal(t, "222", got.Number)

	assert.True(t, s.Delete(entities.NewID(1)))
	_, ok = s.GetByID(entities.NewID(1))
	assert.False(t, ok)
	assert.Equal(t, []string{"2"}, ids(s))
}

func TestStore_AddRejectsSuppliedID(t *testing.T) {
	s := New()
	c := contact("Ann Lee", "111")
	c.ID = entities.NewID(7)

	_, err := s.Add(c)
	require.ErrorIs(t, err, entities.ErrInvalidID)
	assert.Equal(t, 0, s.Len())
}

func TestStore_AddRejectsBlankName(t *testing.T) {
	s := New()
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(contact(name, "1"))
		require.ErrorIs(t, err, entities.ErrInvalidName, "name %q", name)
	}
	assert.Equal(t, 0, s.Len())
}

func TestStore_IDsStaySortedAfterEveryAdd(t *testing.T) {
	s := New()
	for i := 0; i < 50; i++ {
		_, err := s.Add(contact(fmt.Sprintf("Person %d", i), "000"))
		require.NoError(t, err)

		snap := s.Snapshot()
		for j := 1; j < len(snap); j++ {
			require.Equal(t, -1, snap[j-1].ID.Cmp(snap[j].ID), "ids not strictly ascending after add %d", i)
		}
	}
}

func TestStore_IDsAreNotReused(t *testing.T) {
	s := New()
	_, err := s.Add(contact("Ann Lee", "1"))
	require.NoError(t, err)
	_, err = s.Add(contact("Bob King", "2"))
	require.NoError(t, err)

	s.Delete(entities.NewID(2))
	id, err := s.Add(contact("Cid Moe", "3"))
	require.NoError(t, err)
	assert.Equal(t, entities.NewID(2), id, "max+1 after deleting the max")

	s.Delete(entities.NewID(1))
	id, err = s.Add(contact("Dee Ray", "4"))
	require.NoError(t, err)
	assert.Equal(t, entities.NewID(3), id, "gaps below the max are not filled")
}

func TestStore_AllocateFallsBackToRandomOnWrap(t *testing.T) {
	top, err := entities.ParseID(maxID)
	require.NoError(t, err)

	s, err := FromContacts([]entities.Contact{
		{ID: entities.NewID(5), Name: "Ann Lee"},
		{ID: top, Name: "Bob King"},
	})
	require.NoError(t, err)

	// The first draws collide with existing ids; the loop must keep going
	// until it finds one that is free.
	draws := []entities.ID{top, entities.NewID(5), entities.ID{}, entities.NewID(42)}
	s.randomID = func() entities.ID {
		next := draws[0]
		draws = draws[1:]
		return next
	}

	id, err := s.Add(contact("Cid Moe", "3"))
	require.NoError(t, err)
	assert.Equal(t, entities.NewID(42), id)
	assert.Empty(t, draws)
	assert.Equal(t, []string{"5", "42", maxID}, ids(s))
}

func TestStore_GetByName(t *testing.T) {
	s := New()
	_, err := s.Add(contact("Ann Marie Lee", "111"))
	require.NoError(t, err)

	got, ok := s.GetByName("  ann   MARIE lee ")
	require.True(t, ok)
	assert.Equal(t, "Ann Marie Lee", got.Name, "stored casing is preserved")

	_, ok = s.GetByName("Ann Rose Lee")
	assert.True(t, ok, "interior words are ignored")

	_, ok = s.GetByName("Ann Lee")
	assert.False(t, ok, "word count takes part in the key")

	_, ok = s.GetByName("")
	assert.False(t, ok)
}

func TestStore_NameKeyCollisions(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		added    string
		collide  bool
	}{
		{"same", "Ann Lee", "Ann Lee", true},
		{"case and spacing", "Ann Lee", "  aNN    LEE ", true},
		{"different middle", "Ann Marie Lee", "Ann Rose Lee", true},
		{"different word count", "Ann Lee", "Ann Marie Lee", false},
		{"different last", "Ann Lee", "Ann Lea", false},
		{"different first", "Ann Lee", "Anne Lee", false},
		{"single word", "Cher", "cher", true},
		{"single vs double", "Cher", "Cher Cher", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			_, err := s.Add(contact(tt.existing, "1"))
			require.NoError(t, err)

			_, err = s.Add(contact(tt.added, "2"))
			if tt.collide {
				require.ErrorIs(t, err, entities.ErrDuplicateName)
				assert.Equal(t, 1, s.Len())
			} else {
				require.NoError(t, err)
				assert.Equal(t, 2, s.Len())
			}
		})
	}
}

func TestStore_ReadsDoNotMutate(t *testing.T) {
	s := New()
	_, err := s.Add(contact("Ann Lee", "111"))
	require.NoError(t, err)
	_, err = s.Add(contact("Bob King", "222"))
	require.NoError(t, err)
	before := s.Snapshot()

	for i := 0; i < 3; i++ {
		s.GetByID(entities.NewID(1))
		s.GetByID(entities.NewID(99))
		s.GetByName("bob king")
		s.GetByName("nobody here")
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := New()
	_, err := s.Add(contact("Ann Lee", "111"))
	require.NoError(t, err)

	snap := s.Snapshot()
	snap[0].Name = "Mallory"

	got, _ := s.GetByID(entities.NewID(1))
	assert.Equal(t, "Ann Lee", got.Name)
}

func TestStore_Update(t *testing.T) {
	newStore := func(t *testing.T) *Store {
		s := New()
		_, err := s.Add(contact("Ann Lee", "111"))
		require.NoError(t, err)
		return s
	}
	one := entities.NewID(1)

	t.Run("empty name keeps name", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Update(one, entities.ContactPatch{Number: "999"}))
		got, _ := s.GetByID(one)
		assert.Equal(t, entities.Contact{ID: one, Name: "Ann Lee", Number: "999"}, got)
	})

	t.Run("empty number keeps number", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Update(one, entities.ContactPatch{Name: "Ann Fox"}))
		got, _ := s.GetByID(one)
		assert.Equal(t, entities.Contact{ID: one, Name: "Ann Fox", Number: "111"}, got)
	})

	t.Run("both fields", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Update(one, entities.ContactPatch{Name: "Cassandra Fox", Number: "099-887766"}))
		got, _ := s.GetByID(one)
		assert.Equal(t, entities.Contact{ID: one, Name: "Cassandra Fox", Number: "099-887766"}, got)
	})

	t.Run("missing id", func(t *testing.T) {
		s := newStore(t)
		err := s.Update(entities.NewID(2), entities.ContactPatch{Name: "X Y"})
		require.ErrorIs(t, err, entities.ErrNotFound)
		assert.Equal(t, []string{"1"}, ids(s))
	})

	t.Run("name uniqueness is not rechecked", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Add(contact("Bob King", "222"))
		require.NoError(t, err)

		require.NoError(t, s.Update(entities.NewID(2), entities.ContactPatch{Name: "ann lee"}))
		got, _ := s.GetByID(entities.NewID(2))
		assert.Equal(t, "ann lee", got.Name)
	})
}

func TestStore_DeleteMissingIsNoop(t *testing.T) {
	s := New()
	_, err := s.Add(contact("Ann Lee", "111"))
	require.NoError(t, err)
	before := s.Snapshot()

	assert.False(t, s.Delete(entities.NewID(10)))
	assert.False(t, s.Delete(entities.NewID(10)))
	assert.Equal(t, before, s.Snapshot())
}

func TestFromContacts(t *testing.T) {
	t.Run("sorts unordered input", func(t *testing.T) {
		s, err := FromContacts([]entities.Contact{
			{ID: entities.NewID(9), Name: "Cid Moe"},
			{ID: entities.NewID(2), Name: "Ann Lee"},
			{ID: entities.NewID(4), Name: "Bob King"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "4", "9"}, ids(s))

		got, ok := s.GetByID(entities.NewID(4))
		require.True(t, ok)
		assert.Equal(t, "Bob King", got.Name)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := FromContacts([]entities.Contact{{Name: "Ann Lee"}})
		require.Error(t, err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := FromContacts([]entities.Contact{
			{ID: entities.NewID(1), Name: "Ann Lee"},
			{ID: entities.NewID(1), Name: "Bob King"},
		})
		require.Error(t, err)
	})

	t.Run("colliding names are kept", func(t *testing.T) {
		s, err := FromContacts([]entities.Contact{
			{ID: entities.NewID(2), Name: "ann  lee"},
			{ID: entities.NewID(1), Name: "Ann Lee"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())

		got, ok := s.GetByName("ann lee")
		require.True(t, ok)
		assert.Equal(t, entities.NewID(1), got.ID, "first match in id order")
	})
}
