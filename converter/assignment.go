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
	"strings"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

const (
	assignmentStatic          = "static"
	assignmentIdm             = "idm"
	assignmentInitiator       = "$INITIATOR"
	initiatorCanCompleteField = "initiatorCanCompleteTask"

	idmUser      = "user"
	idmUsers     = "users"
	idmGroups    = "groups"
	idmInitiator = "initiator"
)

// fieldReference returns the form field id of a "field(id)" assignment.
func fieldReference(value string) (string, bool) {
	if strings.HasPrefix(value, "field(") && strings.HasSuffix(value, ")") {
		return value[len("field(") : len(value)-1], true
	}
	return "", false
}

func fieldExpression(id string) string {
	return "field(" + id + ")"
}

// isIdmAssignment reports whether the assignment of task was picked from
// the identity service of the modeler.
func isIdmAssignment(ext *bpmn.Extensions) bool {
	return ext.Has(dict.ExtensionIdmAssignee) ||
		ext.Has(dict.ExtensionIdmAssigneeField) ||
		ext.Has(dict.ExtensionIdmCandidateUser) ||
		ext.Has(dict.ExtensionIdmCandidateGroup) ||
		ext.Has(dict.ExtensionIdmInitiator)
}

// assignmentToJSON returns the usertaskassignment property of task, nil
// when the task is not assigned.
func assignmentToJSON(task *bpmn.UserTask) codec.Node {
	if len(task.Assignee) == 0 && len(task.Owner) == 0 && len(task.CandidateUsers) == 0 && len(task.CandidateGroups) == 0 {
		return nil
	}

	var assignment codec.Node
	if isIdmAssignment(task.GetExtensions()) {
		assignment = idmAssignmentToJSON(task)
	} else {
		assignment = codec.Node{"type": assignmentStatic}
		codec.PutString(assignment, dict.PropertyUsertaskAssignee, task.Assignee)
		codec.PutString(assignment, dict.PropertyUsertaskOwner, task.Owner)
		if len(task.CandidateUsers) > 0 {
			assignment[dict.PropertyUsertaskCandidateUsers] = codec.NewValueList(task.CandidateUsers)
		}
		if len(task.CandidateGroups) > 0 {
			assignment[dict.PropertyUsertaskCandidateGroups] = codec.NewValueList(task.CandidateGroups)
		}
	}
	return codec.Node{dict.ValueAssignment: assignment}
}

func idmAssignmentToJSON(task *bpmn.UserTask) codec.Node {
	ext := task.GetExtensions()
	idm := codec.Node{}
	assignment := codec.Node{"type": assignmentIdm, assignmentIdm: idm}
	if v := ext.Value(dict.ExtensionInitiatorCanComplete); len(v) > 0 {
		assignment[initiatorCanCompleteField] = strings.EqualFold(v, "true")
	}

	if ext.Has(dict.ExtensionIdmInitiator) {
		idm["type"] = idmInitiator
		return assignment
	}

	if len(task.Assignee) > 0 {
		idm["type"] = idmUser
		if id, ok := fieldReference(task.Assignee); ok && ext.Has(dict.ExtensionIdmAssigneeField) {
			field := codec.Node{"id": id}
			codec.PutString(field, "name", ext.Value(dict.ExtensionAssigneeFieldInfoName))
			idm["assigneeField"] = field
		} else {
			idm["assignee"] = idmUserNode(ext, task.Assignee, dict.ExtensionAssigneeInfoPrefix, "")
		}
	}

	if len(task.CandidateUsers) > 0 && ext.Has(dict.ExtensionIdmCandidateUser) {
		idm["type"] = idmUsers
		emails := map[string]bool{}
		for _, email := range codec.SplitList(ext.Value(dict.ExtensionCandidateUsersEmails)) {
			emails[email] = true
		}

		var users, fields []interface{}
		for _, user := range task.CandidateUsers {
			if id, ok := fieldReference(user); ok {
				fields = append(fields, idmFieldNode(ext, id, dict.ExtensionUserFieldInfoPrefix))
			} else if emails[user] {
				users = append(users, codec.Node{"email": user})
			} else {
				users = append(users, idmUserNode(ext, user, dict.ExtensionUserInfoPrefix, "-"+user))
			}
		}
		codec.PutNonEmpty(idm, "candidateUsers", users)
		codec.PutNonEmpty(idm, "candidateUserFields", fields)
	}

	if len(task.CandidateGroups) > 0 && ext.Has(dict.ExtensionIdmCandidateGroup) {
		idm["type"] = idmGroups
		var groups, fields []interface{}
		for _, group := range task.CandidateGroups {
			if id, ok := fieldReference(group); ok {
				fields = append(fields, idmFieldNode(ext, id, dict.ExtensionGroupFieldInfoPrefix))
				continue
			}
			node := codec.Node{"id": group}
			codec.PutString(node, "name", ext.Value(dict.ExtensionGroupInfoPrefix+group))
			groups = append(groups, node)
		}
		codec.PutNonEmpty(idm, "candidateGroups", groups)
		codec.PutNonEmpty(idm, "candidateGroupFields", fields)
	}
	return assignment
}

func idmUserNode(ext *bpmn.Extensions, id, prefix, suffix string) codec.Node {
	node := codec.Node{"id": id}
	codec.PutString(node, "email", ext.Value(prefix+"email"+suffix))
	codec.PutString(node, "firstName", ext.Value(prefix+"firstname"+suffix))
	codec.PutString(node, "lastName", ext.Value(prefix+"lastname"+suffix))
	return node
}

func idmFieldNode(ext *bpmn.Extensions, id, prefix string) codec.Node {
	node := codec.Node{"id": id}
	codec.PutString(node, "name", ext.Value(prefix+id))
	return node
}

// parseAssignment reads the usertaskassignment property into task.
func parseAssignment(task *bpmn.UserTask, shape codec.Node) {
	obj := codec.GetObject(dict.PropertyUsertaskAssignment, shape)
	if obj == nil {
		return
	}
	assignment := codec.Object(obj[dict.ValueAssignment])
	if assignment == nil {
		return
	}

	switch typ := codec.Field(assignment, "type"); {
	case len(typ) == 0 || strings.EqualFold(typ, assignmentStatic):
		parseStaticAssignment(task, assignment)
	case strings.EqualFold(typ, assignmentIdm):
		parseIdmAssignment(task, assignment)
	default:
		// unknown assignment types leave the task unassigned
	}
}

func parseStaticAssignment(task *bpmn.UserTask, assignment codec.Node) {
	task.Assignee = codec.Field(assignment, dict.PropertyUsertaskAssignee)
	task.Owner = codec.Field(assignment, dict.PropertyUsertaskOwner)
	task.CandidateUsers = codec.ValueList(assignment, dict.PropertyUsertaskCandidateUsers)
	task.CandidateGroups = codec.ValueList(assignment, dict.PropertyUsertaskCandidateGroups)

	if strings.EqualFold(task.Assignee, assignmentInitiator) {
		setInitiatorCanComplete(task, true)
		return
	}
	setInitiatorCanComplete(task, codec.FieldBool(assignment, initiatorCanCompleteField, false))
}

func parseIdmAssignment(task *bpmn.UserTask, assignment codec.Node) {
	idm := codec.Object(assignment[assignmentIdm])
	typ := codec.Field(idm, "type")
	if len(typ) == 0 {
		return
	}

	assigned := false
	switch {
	case strings.EqualFold(typ, idmUser) && hasAny(idm, "assignee", "assigneeField"):
		assigned = parseIdmAssignee(task, idm)
	case strings.EqualFold(typ, idmUsers) && hasAny(idm, "candidateUsers", "candidateUserFields"):
		assigned = parseIdmCandidateUsers(task, idm)
	case strings.EqualFold(typ, idmGroups) && hasAny(idm, "candidateGroups", "candidateGroupFields"):
		assigned = parseIdmCandidateGroups(task, idm)
	default:
		task.Assignee = assignmentInitiator
		addModelerExtension(task, dict.ExtensionIdmInitiator, "true")
		return
	}
	if assigned {
		setInitiatorCanComplete(task, codec.FieldBool(assignment, initiatorCanCompleteField, false))
	}
}

func hasAny(node codec.Node, keys ...string) bool {
	for _, key := range keys {
		if _, ok := node[key]; ok {
			return true
		}
	}
	return false
}

func parseIdmAssignee(task *bpmn.UserTask, idm codec.Node) bool {
	if assignee := codec.Object(idm["assignee"]); assignee != nil {
		if id := codec.Field(assignee, "id"); len(id) > 0 {
			task.Assignee = id
			addModelerExtension(task, dict.ExtensionIdmAssignee, "true")
			addUserInfo(task, assignee, dict.ExtensionAssigneeInfoPrefix, "")
		} else if email := codec.Field(assignee, "email"); len(email) > 0 {
			task.Assignee = email
		}
	} else if field := codec.Object(idm["assigneeField"]); field != nil {
		if id := codec.Field(field, "id"); len(id) > 0 {
			task.Assignee = fieldExpression(id)
			addModelerExtension(task, dict.ExtensionIdmAssigneeField, "true")
			addOptionalModelerExtension(task, dict.ExtensionAssigneeFieldInfoName, codec.Field(field, "name"))
		}
	}
	return len(task.Assignee) > 0
}

func parseIdmCandidateUsers(task *bpmn.UserTask, idm codec.Node) bool {
	var users, emails []string
	for _, user := range codec.Objects(idm["candidateUsers"]) {
		if id := codec.Field(user, "id"); len(id) > 0 {
			users = append(users, id)
			addUserInfo(task, user, dict.ExtensionUserInfoPrefix, "-"+id)
		} else if email := codec.Field(user, "email"); len(email) > 0 {
			users = append(users, email)
			emails = append(emails, email)
		}
	}
	if len(emails) > 0 {
		addModelerExtension(task, dict.ExtensionCandidateUsersEmails, strings.Join(emails, ","))
	}
	for _, field := range codec.Objects(idm["candidateUserFields"]) {
		if id := codec.Field(field, "id"); len(id) > 0 {
			users = append(users, fieldExpression(id))
			addOptionalModelerExtension(task, dict.ExtensionUserFieldInfoPrefix+id, codec.Field(field, "name"))
		}
	}

	if len(users) == 0 {
		return false
	}
	task.CandidateUsers = users
	addModelerExtension(task, dict.ExtensionIdmCandidateUser, "true")
	return true
}

func parseIdmCandidateGroups(task *bpmn.UserTask, idm codec.Node) bool {
	var groups []string
	for _, group := range codec.Objects(idm["candidateGroups"]) {
		if id := codec.Field(group, "id"); len(id) > 0 {
			groups = append(groups, id)
			addOptionalModelerExtension(task, dict.ExtensionGroupInfoPrefix+id, codec.Field(group, "name"))
		}
	}
	for _, field := range codec.Objects(idm["candidateGroupFields"]) {
		if id := codec.Field(field, "id"); len(id) > 0 {
			groups = append(groups, fieldExpression(id))
			addOptionalModelerExtension(task, dict.ExtensionGroupFieldInfoPrefix+id, codec.Field(field, "name"))
		}
	}

	if len(groups) == 0 {
		return false
	}
	task.CandidateGroups = groups
	addModelerExtension(task, dict.ExtensionIdmCandidateGroup, "true")
	return true
}

// addUserInfo stores the display details of a picked user.
func addUserInfo(task *bpmn.UserTask, user codec.Node, prefix, suffix string) {
	addOptionalModelerExtension(task, prefix+"email"+suffix, codec.Field(user, "email"))
	addOptionalModelerExtension(task, prefix+"firstname"+suffix, codec.Field(user, "firstName"))
	addOptionalModelerExtension(task, prefix+"lastname"+suffix, codec.Field(user, "lastName"))
}

func addOptionalModelerExtension(elem bpmn.Element, name, value string) {
	if len(value) > 0 {
		addModelerExtension(elem, name, value)
	}
}

func setInitiatorCanComplete(task *bpmn.UserTask, canComplete bool) {
	value := "false"
	if canComplete {
		value = "true"
	}
	addModelerExtension(task, dict.ExtensionInitiatorCanComplete, value)
}
