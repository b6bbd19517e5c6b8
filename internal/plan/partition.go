// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

// Cluster is one phase together with its member tasks, in the phase's
// declared membership order.
type Cluster struct {
	Phase   *Node
	Members []*Node
}

// Partition splits the tasks of a registry into phase clusters and the tasks
// no phase claims.
type Partition struct {
	// Clusters holds one entry per phase, in phase declaration order.
	Clusters []Cluster
	// Unassigned holds the tasks claimed by no phase, in task declaration order.
	Unassigned []*Node
}

// PartitionOf computes the rendering partition of reg. A task that several
// phases claim appears in each of their clusters.
func PartitionOf(reg *Registry) (*Partition, error) {
	claimed := make(map[string]struct{})
	part := &Partition{
		Clusters: make([]Cluster, 0, len(reg.phases)),
	}

	for _, phase := range reg.phases {
		names := phase.Members()
		cluster := Cluster{Phase: phase, Members: make([]*Node, 0, len(names))}
		for _, name := range names {
			task, ok := reg.taskByName[name]
			if !ok {
				return nil, &ReferentialIntegrityError{
					Referrer: phase.name,
					Entity:   EntityPhase,
					Kind:     LinkMembership,
					Name:     name,
					Source:   phase.source,
				}
			}
			claimed[name] = struct{}{}
			cluster.Members = append(cluster.Members, task)
		}
		part.Clusters = append(part.Clusters, cluster)
	}

	for _, task := range reg.tasks {
		if _, ok := claimed[task.name]; !ok {
			part.Unassigned = append(part.Unassigned, task)
		}
	}
	return part, nil
}

// PhasesOf returns the names of the phases whose cluster contains the task.
func (p *Partition) PhasesOf(task string) []string {
	var phases []string
	for _, c := range p.Clusters {
		for _, m := range c.Members {
			if m.name == task {
				phases = append(phases, c.Phase.name)
				break
			}
		}
	}
	return phases
}
