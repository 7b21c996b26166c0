// ABOUTME: Chunk codec splits long content strings into bounded-size chunks and reassembles them
// ABOUTME: Chunk ids are opaque composite keys unique across repeated saves of the same article

package chunk

import (
	"fmt"
	"strings"

	"readstash-api/core/interfaces"

	"github.com/google/uuid"
)

// DefaultChunkSize is the maximum content length stored inline before
// splitting into chunks
const DefaultChunkSize = 50000

// Codec splits content into chunks, assigns chunk ids and reassembles
// content from a chunk map
type Codec struct {
	logger interfaces.Logger
}

// NewCodec creates a new chunk codec
func NewCodec(logger interfaces.Logger) *Codec {
	return &Codec{logger: logger}
}

// Split breaks content into successive chunks of exactly chunkSize
// characters, with a shorter final chunk holding the remainder.
// Empty content yields zero chunks.
func (c *Codec) Split(content string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	runes := []rune(content)
	if len(runes) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(runes)+chunkSize-1)/chunkSize)
	for len(runes) > 0 {
		n := chunkSize
		if len(runes) < n {
			n = len(runes)
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}

	return chunks
}

// AssignIDs generates one id per chunk in order. Each id embeds the owning
// article's id, the chunk's position and a fresh uniquifying suffix, so ids
// never collide with a previous save of the same article.
func (c *Codec) AssignIDs(articleID string, chunks []string) []string {
	ids := make([]string, len(chunks))
	for i := range chunks {
		ids[i] = fmt.Sprintf("%s-chunk-%d-%s", articleID, i, randomSuffix())
	}
	return ids
}

// Reassemble concatenates chunk content from chunkMap in the order given by
// chunkIDs. A missing chunk is logged and skipped; the caller receives the
// partial result. Order comes only from the id list, never from map
// iteration.
func (c *Codec) Reassemble(chunkIDs []string, chunkMap map[string]string) string {
	var b strings.Builder

	for _, id := range chunkIDs {
		content, ok := chunkMap[id]
		if !ok {
			if c.logger != nil {
				c.logger.Warn("Missing content chunk", map[string]interface{}{
					"chunk_id": id,
				})
			}
			continue
		}
		b.WriteString(content)
	}

	return b.String()
}

// randomSuffix returns an 8-character uniquifying token
func randomSuffix() string {
	return uuid.New().String()[:8]
}
