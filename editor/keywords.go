package editor

import "context"

// keywordTag is the IPTC keyword list. Reads go through the plain tag name;
// additions use the += form so exiftool merges instead of replacing.
const keywordTag = "Keywords"

// Keywords returns the image's keyword list in the order exiftool reports
// it. A single keyword arrives from exiftool's JSON as a bare string and is
// normalized to a one-element list; an unset tag yields an empty list.
func (e *Editor) Keywords(ctx context.Context) ([]string, error) {
	value, ok, err := e.Tag(ctx, keywordTag)
	if err != nil || !ok {
		return nil, err
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []any:
		keywords := make([]string, 0, len(v))
		for _, item := range v {
			keywords = append(keywords, renderValue(item))
		}
		return keywords, nil
	default:
		return []string{renderValue(v)}, nil
	}
}

// AddKeyword appends a single keyword, preserving existing ones.
func (e *Editor) AddKeyword(ctx context.Context, keyword string) error {
	return e.AddKeywords(ctx, []string{keyword})
}

// AddKeywords appends keywords in one invocation, preserving existing ones.
// De-duplication and merge order are exiftool's to decide.
func (e *Editor) AddKeywords(ctx context.Context, keywords []string) error {
	if len(keywords) == 0 {
		return nil
	}
	assignments := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		assignments = append(assignments, "-iptc:keywords+="+keyword)
	}
	return e.write(ctx, assignments...)
}

// SetKeywords replaces the keyword list entirely.
func (e *Editor) SetKeywords(ctx context.Context, keywords []string) error {
	if err := e.ClearKeywords(ctx); err != nil {
		return err
	}
	return e.AddKeywords(ctx, keywords)
}

// ClearKeywords removes all keywords from the image.
func (e *Editor) ClearKeywords(ctx context.Context) error {
	return e.SetTag(ctx, keywordTag, "")
}

// RemoveKeyword removes one keyword; missing keywords are ignored.
func (e *Editor) RemoveKeyword(ctx context.Context, keyword string) error {
	return e.RemoveKeywords(ctx, []string{keyword})
}

// RemoveKeywords reads the current list, drops the first occurrence of
// each given keyword, and writes the result back.
func (e *Editor) RemoveKeywords(ctx context.Context, keywords []string) error {
	current, err := e.Keywords(ctx)
	if err != nil {
		return err
	}
	for _, keyword := range keywords {
		for i, existing := range current {
			if existing == keyword {
				current = append(current[:i], current[i+1:]...)
				break
			}
		}
	}
	return e.SetKeywords(ctx, current)
}
