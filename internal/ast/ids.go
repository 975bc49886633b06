package ast

// NodeID indexes a node inside a Tree's arena. The zero value means "no node";
// parent back-references and unresolved links hold NoNodeID.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
