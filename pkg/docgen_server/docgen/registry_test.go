package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	require.Len(t, Registry, 18)

	seen := make(map[DocumentID]struct{})
	for _, doc := range Registry {
		assert.NotEmpty(t, doc.ID)
		assert.NotEmpty(t, doc.Label)
		assert.NotNil(t, doc.Render)
		_, dup := seen[doc.ID]
		assert.False(t, dup, "duplicate id %q", doc.ID)
		seen[doc.ID] = struct{}{}
	}

	assert.Equal(t, DocCommercialInvoice, Registry[0].ID)
	assert.Equal(t, DocPackingList, Registry[1].ID)
}

func TestDefaultSelection(t *testing.T) {
	assert.Equal(t, []DocumentID{DocCommercialInvoice, DocPackingList}, DefaultSelection())
}

func TestDocumentTypeByID(t *testing.T) {
	doc, found := DocumentTypeByID(DocAirWaybill)
	require.True(t, found)
	assert.Equal(t, "Air Waybill (AWB)", doc.Label)

	_, found = DocumentTypeByID(DocumentID("bogus"))
	assert.False(t, found)
}

func TestKnownDocumentIDs(t *testing.T) {
	ids := KnownDocumentIDs()
	require.Len(t, ids, len(Registry))
	for i, doc := range Registry {
		assert.Equal(t, doc.ID, ids[i])
	}
}
