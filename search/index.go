package search

import (
	"context"

	"github.com/blugelabs/bluge"

	"social-sync/domain"
)

// Index is an in-memory bluge index fed by the reconciler. It lives and
// dies with the session, like the rest of the local state.
type Index struct {
	writer *bluge.Writer
}

func NewInMemoryIndex() (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	return &Index{writer: writer}, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}

// Add indexes one message; re-adding the same id updates in place.
func (i *Index) Add(msg domain.Message) error {
	doc := bluge.NewDocument(msg.ID).
		AddField(bluge.NewTextField("content", msg.Content).StoreValue()).
		AddField(bluge.NewKeywordField("conversation_id", msg.ConversationID)).
		AddField(bluge.NewKeywordField("sender_id", msg.SenderID))
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the ids of matching messages, best first.
func (i *Index) Search(ctx context.Context, query Query) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	match := bluge.NewMatchQuery(query.Terms).SetField("content")
	var q bluge.Query = match
	if query.ConversationID != "" {
		q = bluge.NewBooleanQuery().
			AddMust(match).
			AddMust(bluge.NewTermQuery(query.ConversationID).SetField("conversation_id"))
	}

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(query.Limit, q))
	if err != nil {
		return nil, err
	}

	var ids []string
	for {
		next, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}
