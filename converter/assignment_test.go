// Copyright 2023 Lack (xingyys@gmail.com).
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

func TestUserTaskAssignment(t *testing.T) {
	tests := []struct {
		name       string
		assignment codec.Node
		assignee   string
		users      []string
		groups     []string
		extensions map[string]string
	}{
		{
			name: "static",
			assignment: codec.Node{
				"type":                               assignmentStatic,
				dict.PropertyUsertaskAssignee:        "kermit",
				dict.PropertyUsertaskCandidateGroups: []interface{}{codec.Node{"value": "hr"}},
			},
			assignee: "kermit",
			groups:   []string{"hr"},
			extensions: map[string]string{
				dict.ExtensionInitiatorCanComplete: "false",
			},
		},
		{
			name: "idm user",
			assignment: codec.Node{
				"type":                    assignmentIdm,
				initiatorCanCompleteField: true,
				"idm": codec.Node{
					"type":     idmUser,
					"assignee": codec.Node{"id": "kermit", "email": "kermit@muppets.org", "firstName": "Kermit"},
				},
			},
			assignee: "kermit",
			extensions: map[string]string{
				dict.ExtensionIdmAssignee:          "true",
				"assignee-info-email":              "kermit@muppets.org",
				"assignee-info-firstname":          "Kermit",
				dict.ExtensionInitiatorCanComplete: "true",
			},
		},
		{
			name: "idm assignee field",
			assignment: codec.Node{
				"type":                    assignmentIdm,
				initiatorCanCompleteField: false,
				"idm": codec.Node{
					"type":          idmUser,
					"assigneeField": codec.Node{"id": "approver", "name": "Approver"},
				},
			},
			assignee: "field(approver)",
			extensions: map[string]string{
				dict.ExtensionIdmAssigneeField:      "true",
				dict.ExtensionAssigneeFieldInfoName: "Approver",
			},
		},
		{
			name: "idm users",
			assignment: codec.Node{
				"type":                    assignmentIdm,
				initiatorCanCompleteField: false,
				"idm": codec.Node{
					"type": idmUsers,
					"candidateUsers": []interface{}{
						codec.Node{"id": "gonzo", "lastName": "Great"},
						codec.Node{"email": "piggy@muppets.org"},
					},
					"candidateUserFields": []interface{}{codec.Node{"id": "reviewer"}},
				},
			},
			users: []string{"gonzo", "piggy@muppets.org", "field(reviewer)"},
			extensions: map[string]string{
				dict.ExtensionIdmCandidateUser:     "true",
				dict.ExtensionCandidateUsersEmails: "piggy@muppets.org",
				"user-info-lastname-gonzo":         "Great",
			},
		},
		{
			name: "idm groups",
			assignment: codec.Node{
				"type":                    assignmentIdm,
				initiatorCanCompleteField: false,
				"idm": codec.Node{
					"type":                 idmGroups,
					"candidateGroups":      []interface{}{codec.Node{"id": "hr", "name": "Human resources"}},
					"candidateGroupFields": []interface{}{codec.Node{"id": "department", "name": "Department"}},
				},
			},
			groups: []string{"hr", "field(department)"},
			extensions: map[string]string{
				dict.ExtensionIdmCandidateGroup:    "true",
				"group-info-name-hr":               "Human resources",
				"group-field-info-name-department": "Department",
				dict.ExtensionInitiatorCanComplete: "false",
			},
		},
		{
			name: "idm initiator",
			assignment: codec.Node{
				"type": assignmentIdm,
				"idm":  codec.Node{"type": idmInitiator},
			},
			assignee: assignmentInitiator,
			extensions: map[string]string{
				dict.ExtensionIdmInitiator: "true",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{model: bpmn.NewModel()}

			in := codec.NewShape("task", dict.StencilTaskUser, 200, 160, 100, 80)
			codec.ShapeProperties(in)[dict.PropertyUsertaskAssignment] = codec.Node{dict.ValueAssignment: tt.assignment}

			elem, err := userTaskToDomain(ctx, in)
			if !assert.NoError(t, err) {
				return
			}
			task := elem.(*bpmn.UserTask)
			assert.Equal(t, tt.assignee, task.Assignee)
			if len(tt.users) > 0 || len(task.CandidateUsers) > 0 {
				assert.Equal(t, tt.users, task.CandidateUsers)
			}
			if len(tt.groups) > 0 || len(task.CandidateGroups) > 0 {
				assert.Equal(t, tt.groups, task.CandidateGroups)
			}
			for name, value := range tt.extensions {
				assert.Equal(t, value, task.GetExtensions().Value(name), name)
			}

			out := codec.NewShape("task", dict.StencilTaskUser, 200, 160, 100, 80)
			if !assert.NoError(t, userTaskToJSON(ctx, task, out)) {
				return
			}
			assert.Equal(t,
				codec.Node{dict.ValueAssignment: tt.assignment},
				codec.ShapeProperties(out)[dict.PropertyUsertaskAssignment])
		})
	}
}

func TestUnknownAssignmentType(t *testing.T) {
	shape := codec.NewShape("task", dict.StencilTaskUser, 200, 160, 100, 80)
	codec.ShapeProperties(shape)[dict.PropertyUsertaskAssignment] = codec.Node{
		dict.ValueAssignment: codec.Node{"type": "ldap", dict.PropertyUsertaskAssignee: "kermit"},
	}

	elem, err := userTaskToDomain(Context{model: bpmn.NewModel()}, shape)
	if assert.NoError(t, err) {
		task := elem.(*bpmn.UserTask)
		assert.Empty(t, task.Assignee)
		assert.Equal(t, 0, task.GetExtensions().Len())
	}
}

func TestFieldReference(t *testing.T) {
	id, ok := fieldReference("field(approver)")
	assert.True(t, ok)
	assert.Equal(t, "approver", id)

	_, ok = fieldReference("approver")
	assert.False(t, ok)
}
