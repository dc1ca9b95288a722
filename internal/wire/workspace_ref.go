package wire

// WorkspaceReferenceKind distinguishes the three ways external callers
// identify a workspace.
type WorkspaceReferenceKind int

const (
	WorkspaceRefID WorkspaceReferenceKind = iota
	WorkspaceRefIndex
	WorkspaceRefName
)

// WorkspaceReference = Id(u64) | Index(u8) | Name(string). Index is
// 0-based internally; UI-facing 1-based indices must be converted by the
// caller before constructing one of these.
type WorkspaceReference struct {
	Kind  WorkspaceReferenceKind
	ID    WorkspaceID
	Index int
	Name  string
}

func RefByID(id WorkspaceID) WorkspaceReference {
	return WorkspaceReference{Kind: WorkspaceRefID, ID: id}
}

func RefByIndex(idx int) WorkspaceReference {
	return WorkspaceReference{Kind: WorkspaceRefIndex, Index: idx}
}

func RefByName(name string) WorkspaceReference {
	return WorkspaceReference{Kind: WorkspaceRefName, Name: name}
}

// Matches reports whether this reference resolves to a workspace with the
// given id, positional index (-1 if not applicable, e.g. the NoOutputs
// bucket has no monitor-relative position), and name.
func (r WorkspaceReference) Matches(id WorkspaceID, index int, name string) bool {
	switch r.Kind {
	case WorkspaceRefID:
		return r.ID == id
	case WorkspaceRefIndex:
		return index >= 0 && r.Index == index
	case WorkspaceRefName:
		return r.Name == name
	default:
		return false
	}
}
